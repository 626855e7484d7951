package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pedigree/pkg/ancestry"
	perrors "github.com/matzehuels/pedigree/pkg/errors"
	pio "github.com/matzehuels/pedigree/pkg/io"
	"github.com/matzehuels/pedigree/pkg/pipeline"
)

// recordSummary counts what a record file contains.
type recordSummary struct {
	persons     int
	generations int
	bySex       map[ancestry.Sex]int
	thumbnails  int
	rtlNames    int
	badURLs     []string // "xref: url" of thumbnails and links that are not http(s)
}

func summarize(root *ancestry.Person) recordSummary {
	s := recordSummary{
		persons:     root.Count(),
		generations: root.Depth(),
		bySex:       make(map[ancestry.Sex]int),
	}
	root.Walk(func(p *ancestry.Person) bool {
		s.bySex[p.Sex]++
		if p.IsNameRTL || p.IsAltRTL {
			s.rtlNames++
		}
		if p.HasImage() {
			s.thumbnails++
			if perrors.ValidateURL(p.Thumbnail) != nil {
				s.badURLs = append(s.badURLs, label(p)+": "+p.Thumbnail)
			}
		}
		if p.URL != "" && perrors.ValidateURL(p.URL) != nil {
			s.badURLs = append(s.badURLs, label(p)+": "+p.URL)
		}
		return true
	})
	return s
}

func label(p *ancestry.Person) string {
	if p.Xref != "" {
		return p.Xref
	}
	return "#" + strconv.Itoa(p.ID)
}

// validateCommand creates the validate command for checking record files.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [records.json]",
		Short: "Check a record file and summarize it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			loggerFromContext(cmd.Context()).Debugf("Validating %s", input)

			root, err := pio.ImportJSON(input)
			if err != nil {
				printError("%s", perrors.UserMessage(err))
				return fmt.Errorf("validate %s: %w", input, err)
			}
			hash, err := pipeline.TreeHash(root)
			if err != nil {
				return err
			}

			s := summarize(root)
			printSuccess("%s is valid", input)
			fmt.Println(summaryTable([]string{"Field", "Value"}, [][]string{
				{"Persons", strconv.Itoa(s.persons)},
				{"Generations", strconv.Itoa(s.generations)},
				{"Male", strconv.Itoa(s.bySex[ancestry.SexMale])},
				{"Female", strconv.Itoa(s.bySex[ancestry.SexFemale])},
				{"Unknown", strconv.Itoa(s.bySex[ancestry.SexUnknown])},
				{"Thumbnails", strconv.Itoa(s.thumbnails)},
				{"RTL names", strconv.Itoa(s.rtlNames)},
				{"Tree hash", hash[:12]},
			}))
			for _, u := range s.badURLs {
				printWarning("unsafe URL %s", u)
			}
			if s.generations > perrors.MaxGenerations {
				printDetail("Only %d of %d generations can be drawn", perrors.MaxGenerations, s.generations)
			}
			return nil
		},
	}
}
