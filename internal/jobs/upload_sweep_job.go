package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/townkitchenn/fnp-delivery-backend/internal/core/domain/model/kernel"
	"github.com/townkitchenn/fnp-delivery-backend/internal/core/ports"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// sweepGracePeriod protects files uploaded moments ago. A file written by a
// create or status-change request may not be referenced by any row until
// that request's transaction commits.
const sweepGracePeriod = time.Hour

// UploadSweepJob deletes stored upload files that no delivery item
// references anymore. Orphans appear when a later step of a request fails
// after the file was already written, or when an item row is deleted.
type UploadSweepJob struct {
	db        *gorm.DB
	fileStore ports.FileStore
	cron      *cron.Cron
	logger    *slog.Logger
	now       func() time.Time
}

// NewUploadSweepJob creates the hourly orphaned-upload sweep.
func NewUploadSweepJob(db *gorm.DB, fileStore ports.FileStore, logger *slog.Logger) *UploadSweepJob {
	return &UploadSweepJob{
		db:        db,
		fileStore: fileStore,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "upload_sweep_job"),
		now:       time.Now,
	}
}

// Start begins the sweep on an hourly schedule.
func (j *UploadSweepJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()
		if err := j.Sweep(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Upload sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Upload sweep job started (running hourly)")
	return nil
}

// Stop stops the sweep job.
func (j *UploadSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Upload sweep job stopped")
}

// Sweep runs one pass: list stored files, diff against the refs held by
// delivery item rows and remove the unreferenced leftovers.
func (j *UploadSweepJob) Sweep(ctx context.Context) error {
	referenced, err := j.referencedRefs(ctx)
	if err != nil {
		return fmt.Errorf("collect referenced uploads: %w", err)
	}

	stored, err := j.fileStore.List(ctx)
	if err != nil {
		return fmt.Errorf("list stored uploads: %w", err)
	}

	removed := 0
	for _, ref := range orphanRefs(stored, referenced, j.now()) {
		if err := j.fileStore.Remove(ctx, ref); err != nil {
			j.logger.ErrorContext(ctx, "Failed to remove orphaned upload", "ref", ref.String(), "error", err)
			continue
		}
		removed++
	}

	if removed > 0 {
		j.logger.InfoContext(ctx, "Removed orphaned uploads", "count", removed)
	}
	return nil
}

// referencedRefs collects every upload path some delivery item row still
// points at.
func (j *UploadSweepJob) referencedRefs(ctx context.Context) (map[string]struct{}, error) {
	rows, err := j.db.WithContext(ctx).Raw(`
		SELECT image_ref AS ref FROM delivery_items WHERE image_ref IS NOT NULL
		UNION
		SELECT delivered_image_ref AS ref FROM delivery_items WHERE delivered_image_ref IS NOT NULL`,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	referenced := make(map[string]struct{})
	for rows.Next() {
		var ref string
		if err := rows.Scan(&ref); err != nil {
			return nil, err
		}
		referenced[ref] = struct{}{}
	}

	return referenced, rows.Err()
}

// orphanRefs selects the stored refs that are unreferenced and older than
// the grace period. Files whose name does not carry a parseable upload
// timestamp are left alone.
func orphanRefs(stored []kernel.StorageRef, referenced map[string]struct{}, now time.Time) []kernel.StorageRef {
	var orphans []kernel.StorageRef

	for _, ref := range stored {
		if _, ok := referenced[ref.String()]; ok {
			continue
		}

		uploadedAt, ok := uploadTime(ref.String())
		if !ok || now.Sub(uploadedAt) < sweepGracePeriod {
			continue
		}

		orphans = append(orphans, ref)
	}

	return orphans
}

// uploadTime recovers the upload instant from the stored file name, which
// ends in the creation time in unix milliseconds.
func uploadTime(name string) (time.Time, bool) {
	trimmed := strings.TrimSuffix(name, path.Ext(name))

	idx := strings.LastIndex(trimmed, "-")
	if idx < 0 {
		return time.Time{}, false
	}

	millis, err := strconv.ParseInt(trimmed[idx+1:], 10, 64)
	if err != nil {
		return time.Time{}, false
	}

	return time.UnixMilli(millis), true
}
