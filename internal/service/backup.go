package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/McFlayr/meal-planner/config"
	"github.com/McFlayr/meal-planner/internal/migrate"
	"github.com/McFlayr/meal-planner/internal/model"
	"github.com/McFlayr/meal-planner/internal/store"
)

// MergeMode selects how an imported backup is combined with the current
// document.
type MergeMode string

const (
	// MergeReplace discards the current document in favor of the backup.
	MergeReplace MergeMode = "replace"
	// MergeOverwrite unions key-wise with the backup winning collisions;
	// meals replace existing meals that share their exact time.
	MergeOverwrite MergeMode = "merge-overwrite"
	// MergeKeep unions key-wise with the current document winning
	// collisions; meals are added only at times not already taken.
	MergeKeep MergeMode = "merge-keep"
)

// MissingKeysError rejects a backup that lacks required top-level keys.
// No mutation happens in that case.
type MissingKeysError struct {
	Keys []string
}

func (e *MissingKeysError) Error() string {
	return fmt.Sprintf("backup is missing required keys: %s", strings.Join(e.Keys, ", "))
}

// BackupService exports and imports whole-document backups. An S3 config
// is optional; when present, exports are also uploaded off-site.
type BackupService struct {
	session  *store.Session
	s3Config *config.S3Config
}

// NewBackupService creates a new BackupService instance.
func NewBackupService(session *store.Session, s3Config *config.S3Config) *BackupService {
	return &BackupService{session: session, s3Config: s3Config}
}

// Export serializes the current document and suggests a timestamped
// filename for the download. When an S3 bucket is configured the backup
// is uploaded there as well; upload failures only log, the export itself
// still succeeds.
func (s *BackupService) Export(ctx context.Context, now time.Time) ([]byte, string, error) {
	data, err := json.MarshalIndent(s.session.Document(), "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal backup: %w", err)
	}

	filename := fmt.Sprintf("meal-planner-backup-%s.json", now.Format("20060102-150405"))
	if s.s3Config != nil {
		key := fmt.Sprintf("backups/%s-%s", uuid.New().String(), filename)
		_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(s.s3Config.BucketName),
			Key:         aws.String(key),
			Body:        bytes.NewReader(data),
			ContentType: aws.String("application/json"),
		})
		if err != nil {
			log.Printf("failed to upload backup to S3: %v", err)
		} else {
			log.Printf("uploaded backup to S3 as %s", key)
		}
	}
	return data, filename, nil
}

// Import parses and validates a backup, merges it into the current
// document under the given mode, and persists the result. Malformed JSON
// and missing top-level keys are rejected before any mutation.
func (s *BackupService) Import(raw []byte, mode MergeMode) error {
	switch mode {
	case MergeReplace, MergeOverwrite, MergeKeep:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBackup, err)
	}
	var missing []string
	for _, key := range []string{"ingredients", "recipes", "weeklyPlan"} {
		if _, ok := keys[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return &MissingKeysError{Keys: missing}
	}

	// Legacy backups carry the old weekly plan shape; run them through
	// the migrator like any other load.
	incoming, _, err := migrate.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBackup, err)
	}

	merged := Merge(s.session.Document(), incoming, mode)
	s.session.Replace(merged)
	return s.session.Commit()
}

// Merge combines the current and incoming documents under the given mode
// and returns the result with every day list re-sorted. Inputs are not
// modified.
func Merge(current, incoming *model.Document, mode MergeMode) *model.Document {
	if mode == MergeReplace {
		result := *incoming
		result.Normalize()
		return &result
	}

	result := model.NewDocument()

	for name, ing := range current.Ingredients {
		result.Ingredients[name] = ing
	}
	for name, ing := range incoming.Ingredients {
		if _, exists := result.Ingredients[name]; exists && mode == MergeKeep {
			continue
		}
		result.Ingredients[name] = ing
	}

	for name, recipe := range current.Recipes {
		result.Recipes[name] = recipe
	}
	for name, recipe := range incoming.Recipes {
		if _, exists := result.Recipes[name]; exists && mode == MergeKeep {
			continue
		}
		result.Recipes[name] = recipe
	}

	for _, day := range model.Weekdays {
		result.WeeklyPlan[day] = mergeDay(current.WeeklyPlan[day], incoming.WeeklyPlan[day], mode)
	}
	result.Normalize()
	return result
}

// mergeDay merges one day's meal lists by time-of-day: in overwrite mode
// an incoming meal replaces every existing meal sharing its time, in keep
// mode it is added only when its time is free.
func mergeDay(current, incoming []model.ScheduledMeal, mode MergeMode) []model.ScheduledMeal {
	taken := make(map[string]bool, len(current))
	for _, meal := range current {
		taken[meal.Time] = true
	}

	replaced := make(map[string]bool)
	merged := append([]model.ScheduledMeal{}, current...)
	for _, meal := range incoming {
		if !taken[meal.Time] {
			merged = append(merged, meal)
			taken[meal.Time] = true
			continue
		}
		if mode == MergeKeep {
			continue
		}
		if !replaced[meal.Time] {
			// First incoming meal at this time replaces the existing ones.
			kept := merged[:0]
			for _, m := range merged {
				if m.Time != meal.Time {
					kept = append(kept, m)
				}
			}
			merged = kept
			replaced[meal.Time] = true
		}
		merged = append(merged, meal)
	}
	return merged
}
