package queue

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type countingTask struct {
	executed *atomic.Int32
}

func (t *countingTask) Execute(ctx context.Context) {
	t.executed.Add(1)
}

func TestEditTaskQueue(t *testing.T) {
	t.Run("queued tasks execute", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		wg := &sync.WaitGroup{}
		InitEditTaskQueue(ctx, wg)

		var executed atomic.Int32
		for i := 0; i < 3; i++ {
			EditTaskQueue <- &countingTask{executed: &executed}
		}
		require.Eventually(t, func() bool {
			return executed.Load() == 3
		}, time.Second, 10*time.Millisecond)

		cancel()
		wg.Wait()
	})
}
