package roster

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/arnavshah/camp-scheduler-api/pkg/database"
	"github.com/arnavshah/camp-scheduler-api/pkg/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const stateRowID = 1

// Repository persists the roster between sessions
type Repository struct {
	DB *gorm.DB
}

// NewRepository creates a roster repository on an initialised database
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Load returns the stored roster snapshot
func (r *Repository) Load(ctx context.Context) (models.Roster, error) {
	roster := models.NewRoster()

	var slots []database.StaffSlot
	if err := r.DB.WithContext(ctx).Order("group_id, slot").Find(&slots).Error; err != nil {
		return models.Roster{}, fmt.Errorf("load staff slots: %w", err)
	}
	for _, s := range slots {
		err := roster.SetSlot(models.GroupID(s.GroupID), s.Slot, models.StaffMember{
			ID:                 s.StaffID,
			Name:               s.Name,
			LifeguardCertified: s.LifeguardCertified,
			SeniorCounselor:    s.SeniorCounselor,
		})
		if err != nil {
			return models.Roster{}, fmt.Errorf("load staff slot %d: %w", s.ID, err)
		}
	}

	var state database.RosterState
	err := r.DB.WithContext(ctx).First(&state, stateRowID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
	case err != nil:
		return models.Roster{}, fmt.Errorf("load roster state: %w", err)
	default:
		if err := roster.SetOnBreak(models.GroupID(state.OnBreak)); err != nil {
			return models.Roster{}, err
		}
	}
	return roster, nil
}

// SaveSlot stores a staff member in a slot. A blank name clears the slot.
// The staff id is generated when the slot is first filled and kept across edits.
func (r *Repository) SaveSlot(ctx context.Context, group models.GroupID, slot int, in models.SlotInput) (*models.StaffMember, error) {
	if err := checkSlot(group, slot); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, r.ClearSlot(ctx, group, slot)
	}

	row := database.StaffSlot{
		GroupID:            string(group),
		Slot:               slot,
		StaffID:            uuid.NewString(),
		Name:               name,
		LifeguardCertified: in.LifeguardCertified,
		SeniorCounselor:    in.SeniorCounselor,
	}
	err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "group_id"}, {Name: "slot"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "lifeguard_certified", "senior_counselor", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return nil, fmt.Errorf("save staff slot: %w", err)
	}

	var saved database.StaffSlot
	if err := r.DB.WithContext(ctx).Where("group_id = ? AND slot = ?", string(group), slot).First(&saved).Error; err != nil {
		return nil, fmt.Errorf("reload staff slot: %w", err)
	}
	return &models.StaffMember{
		ID:                 saved.StaffID,
		Name:               saved.Name,
		LifeguardCertified: saved.LifeguardCertified,
		SeniorCounselor:    saved.SeniorCounselor,
		Group:              group,
	}, nil
}

// ClearSlot empties one slot
func (r *Repository) ClearSlot(ctx context.Context, group models.GroupID, slot int) error {
	if err := checkSlot(group, slot); err != nil {
		return err
	}
	err := r.DB.WithContext(ctx).
		Where("group_id = ? AND slot = ?", string(group), slot).
		Delete(&database.StaffSlot{}).Error
	if err != nil {
		return fmt.Errorf("clear staff slot: %w", err)
	}
	return nil
}

// ClearAll removes every staff member and takes all groups off break
func (r *Repository) ClearAll(ctx context.Context) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&database.StaffSlot{}).Error; err != nil {
			return fmt.Errorf("clear staff slots: %w", err)
		}
		return saveState(tx, "")
	})
}

// SetOnBreak puts one group on break, releasing any other. Empty means nobody.
func (r *Repository) SetOnBreak(ctx context.Context, group models.GroupID) error {
	if group != "" && group.Index() < 0 {
		return fmt.Errorf("%w: %q", models.ErrUnknownGroup, group)
	}
	return saveState(r.DB.WithContext(ctx), group)
}

// Replace overwrites the stored roster with a snapshot
func (r *Repository) Replace(ctx context.Context, roster models.Roster) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&database.StaffSlot{}).Error; err != nil {
			return fmt.Errorf("clear staff slots: %w", err)
		}
		for _, g := range roster.Groups {
			for i, m := range g.Slots {
				if m == nil || m.Name == "" {
					continue
				}
				id := m.ID
				if id == "" || id == models.StaffID(g.ID, i) {
					id = uuid.NewString()
				}
				row := database.StaffSlot{
					GroupID:            string(g.ID),
					Slot:               i,
					StaffID:            id,
					Name:               m.Name,
					LifeguardCertified: m.LifeguardCertified,
					SeniorCounselor:    m.SeniorCounselor,
				}
				if err := tx.Create(&row).Error; err != nil {
					return fmt.Errorf("insert staff slot: %w", err)
				}
			}
		}
		return saveState(tx, roster.OnBreak)
	})
}

func saveState(db *gorm.DB, group models.GroupID) error {
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"on_break"}),
	}).Create(&database.RosterState{ID: stateRowID, OnBreak: string(group)}).Error
	if err != nil {
		return fmt.Errorf("save roster state: %w", err)
	}
	return nil
}

func checkSlot(group models.GroupID, slot int) error {
	if group.Index() < 0 {
		return fmt.Errorf("%w: %q", models.ErrUnknownGroup, group)
	}
	if slot < 0 || slot >= models.SlotsPerGroup {
		return fmt.Errorf("%w: %d", models.ErrSlotOutOfRange, slot)
	}
	return nil
}
