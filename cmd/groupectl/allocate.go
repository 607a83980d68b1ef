package main

import (
	"context"
	"io"

	service "github.com/Moefedaily/Brief-creation-groupe/internal/app"
	"github.com/Moefedaily/Brief-creation-groupe/internal/domain/grouping"
	"github.com/Moefedaily/Brief-creation-groupe/internal/domain/mixing"
	"github.com/Moefedaily/Brief-creation-groupe/internal/domain/model"
)

type allocateCmd struct {
	Roster  string   `required:"" type:"existingfile" help:"Roster YAML file (people: [...])."`
	Groups  int      `required:"" short:"g" help:"Number of groups."`
	Names   []string `help:"Group names, one per group. Defaults to '<prefix> 1..n'."`
	Prefix  string   `default:"Group" help:"Prefix of default group names."`
	Mix     []string `help:"Attributes to mix: gender, frenchFluency, formerDWWM, technicalLevel, profile, age or all."`
	History string   `type:"existingfile" help:"YAML file of past draws (draws: [...]) whose pairs to avoid."`
	Seed    int64    `help:"Seed for a reproducible shuffle. Zero seeds from the clock."`
}

type allocationOutput struct {
	Groups   []model.Group            `yaml:"groups"`
	Balanced bool                     `yaml:"balanced"`
	Report   []mixing.CriterionResult `yaml:"report,omitempty"`
	Shuffle  grouping.ShuffleStats    `yaml:"shuffle"`
}

func (cmd *allocateCmd) Run(_ context.Context, out io.Writer) error {
	people, err := loadRoster(cmd.Roster)
	if err != nil {
		return err
	}
	draws, err := loadHistory(cmd.History)
	if err != nil {
		return err
	}
	criteria, err := parseMix(cmd.Mix)
	if err != nil {
		return err
	}

	if err := grouping.CheckGroupCount(len(people), cmd.Groups); err != nil {
		return err
	}
	names := cmd.Names
	if len(names) == 0 {
		names = service.DefaultGroupNames(cmd.Prefix, cmd.Groups)
	}

	opts := []grouping.Option{grouping.WithIDGenerator(grouping.NewSequenceIDs("group"))}
	if cmd.Seed != 0 {
		opts = append(opts, grouping.WithSeed(cmd.Seed))
	}
	res, err := grouping.New(opts...).Run(people, cmd.Groups, names, criteria, draws)
	if err != nil {
		return err
	}

	return writeYAML(out, allocationOutput{
		Groups:   res.Groups,
		Balanced: mixing.Validate(res.Groups, criteria),
		Report:   mixing.Report(res.Groups, criteria),
		Shuffle:  res.Shuffle,
	})
}
