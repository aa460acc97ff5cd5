package registry

import (
	"fmt"
	"strings"
	"time"

	"switchcfg/internal/cisco"
	"switchcfg/internal/models"

	"github.com/google/uuid"
)

// NoPortsSentinel is returned by GenerateCode instead of an empty string
// when nothing matched, so the operator sees a comment rather than a
// blank paste buffer.
const NoPortsSentinel = "! No configured ports found"

// Service owns identity assignment, timestamps and orchestration over
// the Store. Role semantics live entirely in internal/cisco; the service
// only decides which ports to render and how blocks are joined.
type Service struct {
	store Store
}

func NewService(store Store) *Service { return &Service{store: store} }

type CreateInput struct {
	SwitchNumber int
	PortType     string
	PortName     string
	ConfigType   string
	Description  *string
}

// Create upserts by natural key. A second create for the same port fully
// replaces the record: fresh id, fresh created_at. "Create" really means
// "replace" here — callers relying on a stable id should use Update.
func (s *Service) Create(in CreateInput) (models.PortConfig, error) {
	now := time.Now().UTC()
	rec := models.PortConfig{
		ID:           uuid.NewString(),
		SwitchNumber: in.SwitchNumber,
		PortType:     in.PortType,
		PortName:     in.PortName,
		ConfigType:   in.ConfigType,
		Description:  in.Description,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.store.Replace(rec); err != nil {
		return models.PortConfig{}, fmt.Errorf("upsert port config: %w", err)
	}
	return rec, nil
}

func (s *Service) List(f Filter) ([]models.PortConfig, error) {
	return s.store.Find(f, MaxListResults)
}

// Get returns (nil, nil) for an unknown port; absence is not an error.
func (s *Service) Get(portName string, switchNumber int) (*models.PortConfig, error) {
	return s.store.FindOne(portName, switchNumber)
}

// Update mutates config_type and description only. Returns ErrNotFound
// when no record matches the natural key; it never creates one.
func (s *Service) Update(portName string, switchNumber int, configType string, description *string) (*models.PortConfig, error) {
	matched, err := s.store.UpdateOne(portName, switchNumber, map[string]any{
		"config_type": configType,
		"description": description,
		"updated_at":  time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("update port config: %w", err)
	}
	if matched == 0 {
		return nil, ErrNotFound
	}
	return s.store.FindOne(portName, switchNumber)
}

// DeleteAll wipes every record for one switch, or the whole registry
// when switchNumber is nil. Deliberately destructive; the transport
// layer is expected to gate access.
func (s *Service) DeleteAll(switchNumber *int) (int64, error) {
	return s.store.DeleteMany(switchNumber)
}

// GenerateCode renders every port of a (switch, port_type) group into
// one paste-ready block, blank line between ports. Ports stored as
// "none" are skipped without a separator. portCount is the number of
// records matched, not rendered — a switch full of "none" ports still
// reports its size.
func (s *Service) GenerateCode(switchNumber int, portType string) (code string, portCount int, err error) {
	recs, err := s.store.Find(Filter{SwitchNumber: &switchNumber, PortType: &portType}, MaxListResults)
	if err != nil {
		return "", 0, fmt.Errorf("fetch port configs: %w", err)
	}
	if len(recs) == 0 {
		return NoPortsSentinel, 0, nil
	}

	var lines []string
	for _, rec := range recs {
		if rec.ConfigType == "none" {
			continue
		}
		block := cisco.Render(rec.PortName, rec.ConfigType)
		if block != "" {
			lines = append(lines, block, "")
		}
	}
	return strings.Join(lines, "\n"), len(recs), nil
}
