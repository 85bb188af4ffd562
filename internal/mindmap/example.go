package mindmap

// Example returns the built-in demo mindmap: AI skills in manufacturing.
// Used to explore the tool without a generation round-trip.
func Example() *Document {
	return &Document{
		Nodes: []Node{
			{
				ID:          "1",
				Label:       "Overview",
				Explanation: "Overview of AI and machine learning skills needed for manufacturing.",
				Resources:   []string{},
			},
			{
				ID:          "2",
				Label:       "Community Colleges",
				Explanation: "Community colleges offering relevant programs to support learning and development.",
				Resources:   []string{"https://examplecollege1.com", "https://examplecollege2.com"},
			},
			{
				ID:          "3",
				Label:       "Online Courses",
				Explanation: "Online platforms offering courses on AI and machine learning.",
				Resources:   []string{"https://www.coursera.org", "https://www.udacity.com"},
			},
			{
				ID:          "4",
				Label:       "Skill Development",
				Explanation: "Approaches for continuous learning and upskilling in manufacturing.",
				Resources:   []string{"https://example.com/skill-development"},
			},
		},
		Edges: []Edge{
			{Source: "1", Target: "2"},
			{Source: "1", Target: "3"},
			{Source: "1", Target: "4"},
		},
	}
}
