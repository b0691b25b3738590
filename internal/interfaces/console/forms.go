package console

import (
	"context"
	"fmt"

	"github.com/riskibarqy/player-roster/internal/usecase"
)

type addPlayerForm struct {
	Name    string `validate:"required,max=100"`
	Team    string `validate:"max=100"`
	Goals   int    `validate:"gte=0"`
	Assists int    `validate:"gte=0"`
}

type editPlayerForm struct {
	Name    string `validate:"omitempty,max=100"`
	Team    string `validate:"omitempty,max=100"`
	Goals   *int   `validate:"omitempty,gte=0"`
	Assists *int   `validate:"omitempty,gte=0"`
}

func (s *Session) validateForm(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "console.Session.validateForm")
	defer span.End()

	if err := s.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
