package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/player-roster/internal/usecase"
)

func (s *Session) addPlayer(ctx context.Context) error {
	ctx, span := startOperationSpan(ctx, "console.Session.addPlayer")
	defer span.End()

	name, err := s.promptLine("Enter player's name: ")
	if err != nil {
		return err
	}
	team, err := s.promptLine("Enter player's team: ")
	if err != nil {
		return err
	}
	goals, err := s.promptInt("Enter number of goals: ")
	if err != nil {
		return err
	}
	assists, err := s.promptInt("Enter number of assists: ")
	if err != nil {
		return err
	}

	form := addPlayerForm{Name: name, Team: team, Goals: goals, Assists: assists}
	if err := s.validateForm(ctx, form); err != nil {
		return err
	}

	_, index, err := s.service.AddPlayer(ctx, usecase.AddPlayerInput{
		Name:    form.Name,
		Team:    form.Team,
		Goals:   form.Goals,
		Assists: form.Assists,
	})
	if err != nil {
		return err
	}

	s.printf("Player added successfully at index %d.\n", index)
	return nil
}

func (s *Session) editPlayer(ctx context.Context) error {
	ctx, span := startOperationSpan(ctx, "console.Session.editPlayer")
	defer span.End()

	index, err := s.promptInt("Enter the index of the player to edit: ")
	if err != nil {
		return err
	}

	current, err := s.service.PlayerAt(ctx, index)
	if err != nil {
		return err
	}

	s.printf("\nCurrent Player Details:\n")
	s.printf("Name: %s, Team: %s, Goals: %d, Assists: %d\n",
		current.Name, current.Team, current.Goals, current.Assists)
	s.printf("\nEnter the updated details (leave blank to keep the existing value):\n")

	name, err := s.promptLine(fmt.Sprintf("Updated name (%s): ", current.Name))
	if err != nil {
		return err
	}
	team, err := s.promptLine(fmt.Sprintf("Updated team (%s): ", current.Team))
	if err != nil {
		return err
	}
	goals, err := s.promptOptionalInt(fmt.Sprintf("Updated goals (%d): ", current.Goals))
	if err != nil {
		return err
	}
	assists, err := s.promptOptionalInt(fmt.Sprintf("Updated assists (%d): ", current.Assists))
	if err != nil {
		return err
	}

	form := editPlayerForm{Name: name, Team: team, Goals: goals, Assists: assists}
	if err := s.validateForm(ctx, form); err != nil {
		return err
	}

	if _, err := s.service.UpdatePlayer(ctx, index, usecase.UpdatePlayerInput{
		Name:    form.Name,
		Team:    form.Team,
		Goals:   form.Goals,
		Assists: form.Assists,
	}); err != nil {
		return err
	}

	s.printf("Player updated successfully.\n")
	return nil
}

func (s *Session) deletePlayer(ctx context.Context) error {
	ctx, span := startOperationSpan(ctx, "console.Session.deletePlayer")
	defer span.End()

	index, err := s.promptInt("Enter the index of the player to delete: ")
	if err != nil {
		return err
	}

	if err := s.service.RemovePlayer(ctx, index); err != nil {
		return err
	}

	s.printf("Player deleted successfully.\n")
	return nil
}

func (s *Session) displayAllPlayers(ctx context.Context) error {
	ctx, span := startOperationSpan(ctx, "console.Session.displayAllPlayers")
	defer span.End()

	records, err := s.service.ListPlayers(ctx)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		s.printf("No players to display.\n")
		return nil
	}

	s.printf("\nAll Players:\n")
	s.renderIndexedRoster(records)
	return nil
}

func (s *Session) showSummary(ctx context.Context) error {
	ctx, span := startOperationSpan(ctx, "console.Session.showSummary")
	defer span.End()

	summary, err := s.service.Summary(ctx)
	if err != nil {
		return err
	}

	s.printf("Average Goals: %.2f\n", summary.AverageGoals)
	s.printf("Median Assists: %.2f\n", summary.MedianAssists)
	return nil
}

func (s *Session) filterByTeam(ctx context.Context) error {
	ctx, span := startOperationSpan(ctx, "console.Session.filterByTeam")
	defer span.End()

	team, err := s.promptLine("Enter team to filter by: ")
	if err != nil {
		return err
	}

	records, err := s.service.PlayersByTeam(ctx, team)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		s.printf("No players found for team: %s\n", team)
		return nil
	}

	s.printf("\nFiltered Players:\n")
	s.renderPlayers(records)
	return nil
}

func (s *Session) filterByGoalRange(ctx context.Context) error {
	ctx, span := startOperationSpan(ctx, "console.Session.filterByGoalRange")
	defer span.End()

	minGoals, err := s.promptInt("Enter minimum goals: ")
	if err != nil {
		return err
	}
	maxGoals, err := s.promptInt("Enter maximum goals: ")
	if err != nil {
		return err
	}
	order, err := s.promptLine("Order by goals (asc/desc, default asc): ")
	if err != nil {
		return err
	}

	var ascending bool
	switch strings.ToLower(order) {
	case "", "asc":
		ascending = true
	case "desc":
		ascending = false
	default:
		return fmt.Errorf("%w: order %q must be asc or desc", usecase.ErrInvalidInput, order)
	}

	records, err := s.service.PlayersByGoalRange(ctx, minGoals, maxGoals, ascending)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		s.printf("No players found in the specified goal range.\n")
		return nil
	}

	s.printf("\nFiltered Players:\n")
	s.renderPlayers(records)
	return nil
}
