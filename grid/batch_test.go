package grid

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tradegrid/errs"
)

func randomPoints(n int) []Point {
	rng := rand.New(rand.NewSource(7))
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{
			X: rng.Float64()*82717 - 42213,
			Y: rng.Float64()*8700 - 3381,
			Z: rng.Float64()*82530 - 16899,
		}
	}

	return points
}

func TestEncodeBatch(t *testing.T) {
	points := randomPoints(100)

	keys := EncodeBatch(nil, points)
	require.Len(t, keys, len(points))
	for i, p := range points {
		require.Equal(t, EncodePoint(p), keys[i])
	}
}

func TestEncodeBatch_Appends(t *testing.T) {
	dst := []uint64{42}
	keys := EncodeBatch(dst, []Point{{X: -1, Y: -1, Z: -1}, {}})

	require.Equal(t, []uint64{42, allOnes, 0}, keys)
}

func TestEncodeParallel(t *testing.T) {
	points := randomPoints(10000)
	want := EncodeBatch(nil, points)

	for _, workers := range []int{1, 3, 8, 20000} {
		keys, err := EncodeParallel(context.Background(), points, workers)
		require.NoError(t, err)
		require.Equal(t, want, keys, "workers=%d", workers)
	}
}

func TestEncodeParallel_Empty(t *testing.T) {
	keys, err := EncodeParallel(context.Background(), nil, 4)
	require.NoError(t, err)
	require.Empty(t, keys)
}

func TestEncodeParallel_InvalidWorkers(t *testing.T) {
	_, err := EncodeParallel(context.Background(), randomPoints(10), 0)
	require.ErrorIs(t, err, errs.ErrInvalidWorkerCount)
}

func TestEncodeParallel_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	keys, err := EncodeParallel(ctx, randomPoints(10), 2)
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, keys)
}

func BenchmarkEncodeBatch(b *testing.B) {
	points := randomPoints(4096)
	dst := make([]uint64, 0, len(points))
	for b.Loop() {
		dst = EncodeBatch(dst[:0], points)
	}
}
