package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"pos/config"
	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/repository"
	"pos/internal/errors"
	"pos/internal/state"
	"pos/internal/usecase"

	"go.uber.org/fx"
)

const archiveNameLayout = "backup-20060102-150405.json"

// backupDocument mirrors entity.Backup with pointers so that absent sections
// can be told apart from empty ones.
type backupDocument struct {
	Version  string           `json:"version"`
	Products *entity.Catalog  `json:"products"`
	Orders   *entity.Orders   `json:"orders"`
	Settings *entity.Settings `json:"settings"`
}

type backupService struct {
	store       *state.Store
	stateRepo   repository.StateRepository
	archiveRepo repository.BackupArchiveRepository
	location    *time.Location
	logger      *slog.Logger
	now         func() time.Time
}

// BackupServiceParams holds dependencies for BackupService, injected by Fx.
type BackupServiceParams struct {
	fx.In

	Store       *state.Store
	StateRepo   repository.StateRepository
	ArchiveRepo repository.BackupArchiveRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewBackupService creates a new backup service instance
func NewBackupService(params BackupServiceParams) usecase.BackupUsecase {
	return &backupService{
		store:       params.Store,
		stateRepo:   params.StateRepo,
		archiveRepo: params.ArchiveRepo,
		location:    params.Config.Location(),
		logger:      params.Logger,
		now:         time.Now,
	}
}

// Export snapshots catalog, orders and settings into a backup document
func (s *backupService) Export(ctx context.Context) *entity.Backup {
	st := s.store.GetState()
	settings := st.Settings

	backup := &entity.Backup{
		Version:  entity.BackupVersion,
		Date:     s.now().In(s.location),
		Products: st.Catalog,
		Orders:   st.Orders,
		Settings: &settings,
	}
	if backup.Products == nil {
		backup.Products = entity.Catalog{}
	}
	if backup.Orders == nil {
		backup.Orders = entity.Orders{}
	}

	return backup
}

// Restore replaces the durable state with the document's content.
// Products and orders are required; without settings the current ones are kept.
func (s *backupService) Restore(ctx context.Context, data []byte) (*usecase.RestoreResult, error) {
	doc, err := parseBackup(data)
	if err != nil {
		return nil, err
	}

	var persisted bool
	err = s.store.Replace(func(cur entity.AppState) (state.Patch, error) {
		settings := cur.Settings
		if doc.Settings != nil {
			settings = *doc.Settings
		}

		persisted = s.stateRepo.SaveAll(ctx, repository.PersistedState{
			Catalog:  *doc.Products,
			Orders:   *doc.Orders,
			Settings: settings,
		})

		idle := entity.IdleCheckout()
		ui := cur.UI
		ui.Page = 1

		return state.Patch{
			Catalog:  *doc.Products,
			Orders:   *doc.Orders,
			Settings: &settings,
			Cart:     entity.Cart{},
			UI:       &ui,
			Checkout: &idle,
		}, nil
	})
	if err != nil {
		return nil, err
	}

	result := &usecase.RestoreResult{
		Products:         len(*doc.Products),
		Orders:           len(*doc.Orders),
		SettingsRestored: doc.Settings != nil,
	}

	requestLogger(ctx, s.logger).Info("Backup restored",
		slog.Int("products", result.Products),
		slog.Int("orders", result.Orders),
		slog.Bool("settings", result.SettingsRestored),
		slog.Bool("persisted", persisted),
	)

	return result, nil
}

// Archive writes the current export to the backup bucket
func (s *backupService) Archive(ctx context.Context) (*entity.BackupArchive, error) {
	backup := s.Export(ctx)
	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode backup")
	}

	name := backup.Date.Format(archiveNameLayout)
	if err := s.archiveRepo.Put(ctx, name, data); err != nil {
		return nil, domainerrors.NewStorageError(err, name)
	}

	requestLogger(ctx, s.logger).Info("Backup archived",
		slog.String("name", name),
		slog.Int("bytes", len(data)),
	)

	return &entity.BackupArchive{
		Name:       name,
		Size:       int64(len(data)),
		ModifiedAt: backup.Date,
	}, nil
}

func (s *backupService) ListArchives(ctx context.Context) ([]entity.BackupArchive, error) {
	archives, err := s.archiveRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.NewStorageError(err, "list backups")
	}
	if archives == nil {
		archives = []entity.BackupArchive{}
	}

	return archives, nil
}

// RestoreArchive restores a backup previously written by Archive
func (s *backupService) RestoreArchive(ctx context.Context, name string) (*usecase.RestoreResult, error) {
	data, err := s.archiveRepo.Get(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrArchiveNotFound) {
			return nil, domainerrors.ErrBackupNotFound.WithDetails(name)
		}

		return nil, domainerrors.NewStorageError(err, name)
	}

	return s.Restore(ctx, data)
}

func parseBackup(data []byte) (*backupDocument, error) {
	var doc backupDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, domainerrors.ErrInvalidBackupFormat.WithDetails(err.Error())
	}

	switch {
	case doc.Products == nil:
		return nil, domainerrors.ErrInvalidBackupFormat.WithDetails("products tidak ada")
	case doc.Orders == nil:
		return nil, domainerrors.ErrInvalidBackupFormat.WithDetails("orders tidak ada")
	case doc.Settings != nil && !doc.Settings.IsValid():
		return nil, domainerrors.ErrInvalidBackupFormat.WithDetails("settings tidak valid")
	}

	for _, item := range *doc.Products {
		if !item.Kind.IsValid() || item.Price < 0 || item.Stock < 0 {
			return nil, domainerrors.ErrInvalidBackupFormat.WithDetails(fmt.Sprintf("produk %d tidak valid", item.ID))
		}
	}

	return &doc, nil
}
