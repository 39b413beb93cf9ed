package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/schaltkraft/website/internal/segment"
)

var segmentCmd = &cobra.Command{
	Use:   "segment [file]",
	Short: "Print how a job description splits into sections",
	Long:  "Reads HTML from file, or stdin when no file is given, and prints the intro and sections as JSON.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSegment,
}

func runSegment(cmd *cobra.Command, args []string) error {
	in := cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	markup, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	res := segment.Segment(string(markup))
	if res.Sections == nil {
		res.Sections = []segment.Section{}
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
