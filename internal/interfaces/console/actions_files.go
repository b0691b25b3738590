package console

import (
	"context"
	"fmt"
)

func (s *Session) saveRoster(ctx context.Context) error {
	ctx, span := startOperationSpan(ctx, "console.Session.saveRoster")
	defer span.End()

	path, err := s.promptPath("Enter the filename to save players", s.rosterPath)
	if err != nil {
		return err
	}

	count, err := s.service.SaveRoster(ctx, path)
	if err != nil {
		return err
	}

	s.printf("Saved %d players to %s.\n", count, path)
	return nil
}

func (s *Session) loadRoster(ctx context.Context) error {
	ctx, span := startOperationSpan(ctx, "console.Session.loadRoster")
	defer span.End()

	path, err := s.promptPath("Enter the filename to load players from", s.rosterPath)
	if err != nil {
		return err
	}

	count, err := s.service.LoadRoster(ctx, path)
	if err != nil {
		return err
	}

	s.printf("Loaded %d players from %s.\n", count, path)
	return nil
}

func (s *Session) exportSnapshot(ctx context.Context) error {
	ctx, span := startOperationSpan(ctx, "console.Session.exportSnapshot")
	defer span.End()

	path, err := s.promptPath("Enter the filename to export the snapshot", s.snapshotPath)
	if err != nil {
		return err
	}

	count, err := s.service.ExportSnapshot(ctx, path)
	if err != nil {
		return err
	}

	s.printf("Exported %d players to %s.\n", count, path)
	return nil
}

func (s *Session) importSnapshot(ctx context.Context) error {
	ctx, span := startOperationSpan(ctx, "console.Session.importSnapshot")
	defer span.End()

	path, err := s.promptPath("Enter the filename to import the snapshot from", s.snapshotPath)
	if err != nil {
		return err
	}

	count, err := s.service.ImportSnapshot(ctx, path)
	if err != nil {
		return err
	}

	s.printf("Imported %d players from %s.\n", count, path)
	return nil
}

func (s *Session) promptPath(label, fallback string) (string, error) {
	path, err := s.promptLine(fmt.Sprintf("%s (default %s): ", label, fallback))
	if err != nil {
		return "", err
	}
	if path == "" {
		path = fallback
	}

	return path, nil
}
