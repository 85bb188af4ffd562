// Package prompt builds the message text sent to the generation service.
package prompt

import (
	"encoding/json"
	"fmt"

	"mindmapai/mindweave/internal/mindmap"
)

// System is the framing message for mindmap generation requests.
const System = "You generate JSON for interactive mindmaps."

// Mindmap returns the generation prompt for a topic. The service is told to
// emit bare JSON; the response pipeline still tolerates fences and prose.
func Mindmap(topic string) string {
	return fmt.Sprintf("Generate a JSON structure for a mindmap on the topic: '%s'. "+
		"The JSON should include a list of nodes where each node contains 'id', 'label', 'explanation', "+
		"and optionally 'resources' (a list of URLs), and a list of edges where each edge contains 'source' and 'target'. "+
		"Output only valid JSON without any additional text or markdown formatting.", topic)
}

// ChatSystem returns the framing for the follow-up chat. When a document
// exists it is embedded so the service can answer questions about the
// specific mindmap on screen.
func ChatSystem(doc *mindmap.Document) string {
	base := "You are a helpful assistant discussing a mindmap with the user. " +
		"Answer follow-up questions concisely."
	if doc == nil {
		return base
	}

	encoded, err := json.Marshal(doc)
	if err != nil {
		return base
	}
	return base + "\n\nThe current mindmap is:\n" + string(encoded)
}
