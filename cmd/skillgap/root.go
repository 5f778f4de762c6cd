package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"skill-gap/internal/delivery/http/dto"
	"skill-gap/internal/domain/skillgap"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "skillgap",
		Short:        "skillgap compares a candidate's skills against a role's requirements",
		SilenceUsage: true,
	}
	root.AddCommand(newCompareCmd())
	return root
}

func newCompareCmd() *cobra.Command {
	var candidatePath, rolePath string
	var pretty bool

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare two skill files and print the match as JSON",
		Long: `Compare reads the candidate and role files and prints {match, categories}.

Each file holds either a JSON array of skills or a record with a "strengths"
array. Candidate skills use {name, proficiency, weight}; role skills use
{name, experience}.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCompare(candidatePath, rolePath, pretty, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&candidatePath, "candidate", "c", "", "candidate skills file")
	cmd.Flags().StringVarP(&rolePath, "role", "r", "", "role requirements file")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent output")
	_ = cmd.MarkFlagRequired("candidate")
	_ = cmd.MarkFlagRequired("role")
	return cmd
}

func runCompare(candidatePath, rolePath string, pretty bool, w io.Writer) error {
	var candidate []skillgap.CandidateSkill
	if err := readSkills(candidatePath, &candidate); err != nil {
		return fmt.Errorf("read candidate: %w", err)
	}
	var required []skillgap.RequiredSkill
	if err := readSkills(rolePath, &required); err != nil {
		return fmt.Errorf("read role: %w", err)
	}

	res := skillgap.Compare(candidate, required)
	out := dto.ComparisonResponse{Match: res, Categories: res.Categories()}

	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(out)
}

func readSkills[T any](path string, out *[]T) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		return json.Unmarshal(b, out)
	}

	var record struct {
		Strengths []T `json:"strengths"`
	}
	if err := json.Unmarshal(b, &record); err != nil {
		return err
	}
	*out = record.Strengths
	return nil
}
