package main

import (
	"context"
	"errors"
	"io"

	"github.com/Moefedaily/Brief-creation-groupe/internal/domain/mixing"
)

var errUnbalanced = errors.New("partition is not balanced")

type validateCmd struct {
	Partition string   `required:"" type:"existingfile" help:"Partition YAML file (groups: [...], criteria: {...})."`
	Mix       []string `help:"Attributes to check. Overrides the criteria in the file."`
	Strict    bool     `help:"Exit non-zero when the partition is unbalanced."`
}

type verdictOutput struct {
	Balanced bool                     `yaml:"balanced"`
	Report   []mixing.CriterionResult `yaml:"report,omitempty"`
}

func (cmd *validateCmd) Run(_ context.Context, out io.Writer) error {
	var pf partitionFile
	if err := readYAML(cmd.Partition, &pf); err != nil {
		return err
	}
	criteria := pf.Criteria
	if len(cmd.Mix) > 0 {
		c, err := parseMix(cmd.Mix)
		if err != nil {
			return err
		}
		criteria = c
	}

	verdict := verdictOutput{
		Balanced: mixing.Validate(pf.Groups, criteria),
		Report:   mixing.Report(pf.Groups, criteria),
	}
	if err := writeYAML(out, verdict); err != nil {
		return err
	}
	if cmd.Strict && !verdict.Balanced {
		return errUnbalanced
	}
	return nil
}
