package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pkordes/hostel-desk/internal/contract"
	"github.com/pkordes/hostel-desk/internal/domain"
	"github.com/pkordes/hostel-desk/internal/events"
	"github.com/pkordes/hostel-desk/internal/repo"
)

// Filler fills a .docx template. *contract.Engine satisfies it.
type Filler interface {
	Fill(templatePath string, placeholders domain.Placeholders) ([]byte, error)
}

// Contract is a generated document with the name it should be saved under.
type Contract struct {
	Filename string
	Document []byte
}

// ContractService builds rental contracts from the configured template.
type ContractService struct {
	stays     repo.StayRepo
	filler    Filler
	template  string
	publisher events.Publisher
	clock     func() time.Time
	logger    *slog.Logger
}

// NewContractService constructs a ContractService. A nil publisher disables
// events; a nil clock uses time.Now; a nil logger uses slog.Default().
func NewContractService(
	stays repo.StayRepo,
	filler Filler,
	templatePath string,
	publisher events.Publisher,
	clock func() time.Time,
	logger *slog.Logger,
) *ContractService {
	if publisher == nil {
		publisher = events.Nop{}
	}
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ContractService{
		stays:     stays,
		filler:    filler,
		template:  templatePath,
		publisher: publisher,
		clock:     clock,
		logger:    logger,
	}
}

// ForStay generates the contract for one stay. The stay's well-known
// placeholders come first and extra entries are applied after them, replacing
// a well-known value when the key matches.
//
// Returns domain.ErrNotFound for an unknown stay, domain.ErrValidation for an
// extra with an empty key and domain.ErrGenerationFailure when filling fails.
func (s *ContractService) ForStay(ctx context.Context, stayID int64, extra domain.Placeholders) (Contract, error) {
	if err := extra.Validate(); err != nil {
		return Contract{}, fmt.Errorf("service.ContractService.ForStay: %w", err)
	}

	stay, err := s.stays.GetByID(ctx, stayID)
	if err != nil {
		return Contract{}, fmt.Errorf("service.ContractService.ForStay: %w", err)
	}

	now := s.clock()
	placeholders := contract.StayPlaceholders(stay, now)
	for _, p := range extra {
		placeholders = placeholders.Set(p.Key, p.Value)
	}

	c, err := s.fill(placeholders)
	if err != nil {
		return Contract{}, fmt.Errorf("service.ContractService.ForStay: %w", err)
	}

	e := events.NewContractGenerated(stay.ID, stay.RoomNumber, stay.GuestName, c.Filename, now)
	if err := s.publisher.PublishContractGenerated(ctx, e); err != nil {
		s.logger.WarnContext(ctx, "contract event not published",
			"stay_id", stay.ID,
			"event_id", e.ID.String(),
			"error", err,
		)
	}

	s.logger.InfoContext(ctx, "contract generated",
		"stay_id", stay.ID,
		"room", stay.RoomNumber,
		"filename", c.Filename,
		"bytes", len(c.Document),
	)
	return c, nil
}

// Fill generates a contract from caller-supplied placeholders only.
func (s *ContractService) Fill(ctx context.Context, placeholders domain.Placeholders) (Contract, error) {
	if err := placeholders.Validate(); err != nil {
		return Contract{}, fmt.Errorf("service.ContractService.Fill: %w", err)
	}

	c, err := s.fill(placeholders)
	if err != nil {
		return Contract{}, fmt.Errorf("service.ContractService.Fill: %w", err)
	}

	s.logger.InfoContext(ctx, "contract generated",
		"filename", c.Filename,
		"bytes", len(c.Document),
	)
	return c, nil
}

func (s *ContractService) fill(placeholders domain.Placeholders) (Contract, error) {
	doc, err := s.filler.Fill(s.template, placeholders)
	if err != nil {
		return Contract{}, err
	}
	return Contract{Filename: contract.SuggestedFilename(placeholders), Document: doc}, nil
}
