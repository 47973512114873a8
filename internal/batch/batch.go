package batch

import (
	"context"

	"github.com/ThatOtherAndrew/airshape/internal/models"
	"golang.org/x/sync/semaphore"
)

type Classifier interface {
	Classify(models.Stroke) models.Shape
}

// Classify runs the classifier over strokes with at most workers calls in
// flight. Results are in input order.
func Classify(ctx context.Context, c Classifier, strokes []models.Stroke, workers int) ([]models.Shape, error) {
	if workers < 1 {
		workers = 1
	}

	results := make([]models.Shape, len(strokes))
	sem := semaphore.NewWeighted(int64(workers))

	var scheduleErr error
	for i, s := range strokes {
		if err := sem.Acquire(ctx, 1); err != nil {
			scheduleErr = err
			break
		}
		go func(i int, s models.Stroke) {
			defer sem.Release(1)
			results[i] = c.Classify(s)
		}(i, s)
	}

	// Wait for all goroutines to finish
	if err := sem.Acquire(context.Background(), int64(workers)); err != nil {
		return nil, err
	}
	if scheduleErr != nil {
		return nil, scheduleErr
	}
	return results, nil
}

func Counts(results []models.Shape) map[models.Shape]int {
	counts := make(map[models.Shape]int)
	for _, r := range results {
		counts[r]++
	}
	return counts
}
