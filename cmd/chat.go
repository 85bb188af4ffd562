package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"mindmapai/mindweave/internal/mindmap"
	"mindmapai/mindweave/internal/session"
	"mindmapai/mindweave/internal/ui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive session: generate a mindmap, then discuss it",
	Long: `Starts an interactive session. The first input is treated as a topic and
generates a mindmap; later inputs are chat messages about it.

Commands inside the session:
  /node <id|label>   show a node's details
  /example           load the built-in example mindmap
  /map               reprint the current mindmap
  /stats             print the graph report
  /quit              exit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, err := newLogger(false)
		if err != nil {
			return err
		}
		defer logger.Sync()

		svc := newService(cfg, logger)
		sess := session.New()

		ui.Title.Println("mindweave interactive session")
		ui.Subtle.Println("Enter a topic to generate a mindmap, /quit to exit.")

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				return scanner.Err()
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			if strings.HasPrefix(line, "/") {
				if quit := runChatCommand(sess, line); quit {
					return nil
				}
				continue
			}

			if sess.Document() == nil {
				doc, warnings, err := svc.GenerateMindmap(cmd.Context(), sess, line)
				if err != nil {
					ui.Bad.Printf("Error generating mindmap: %v\n", err)
					continue
				}
				ui.PrintWarnings(warnings)
				ui.PrintDocument(doc)
				continue
			}

			reply, err := svc.Chat(cmd.Context(), sess, line)
			if err != nil {
				ui.Bad.Printf("Error: %v\n", err)
				continue
			}
			fmt.Println(reply)
		}
	},
}

// runChatCommand handles a /-prefixed session command. Returns true to quit.
func runChatCommand(sess *session.Session, line string) bool {
	parts := strings.SplitN(line, " ", 2)
	switch parts[0] {
	case "/quit", "/exit":
		return true

	case "/example":
		sess.ReplaceDocument(mindmap.Example())
		sess.SetPendingTopic("AI skills needed in the manufacturing industry")
		ui.PrintDocument(sess.Document())

	case "/map":
		if doc := sess.Document(); doc != nil {
			ui.PrintDocument(doc)
		} else {
			ui.Subtle.Println("No mindmap yet.")
		}

	case "/stats":
		if doc := sess.Document(); doc != nil {
			ui.PrintStats(mindmap.ComputeStats(doc))
		} else {
			ui.Subtle.Println("No mindmap yet.")
		}

	case "/node":
		if len(parts) < 2 {
			ui.Subtle.Println("Usage: /node <id|label>")
			break
		}
		ref := strings.TrimSpace(parts[1])
		node, ok := sess.FindNodeByID(ref)
		if !ok {
			node, ok = sess.FindNodeByLabel(ref)
		}
		if !ok {
			ui.Bad.Printf("Node not found: %s\n", ref)
			break
		}
		ui.PrintNode(node)

	default:
		ui.Subtle.Printf("Unknown command: %s\n", parts[0])
	}
	return false
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
