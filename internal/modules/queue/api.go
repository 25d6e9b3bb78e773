package queue

import (
	"context"
	"sync"

	"github.com/reusedev/retouch-hub/internal/modules/logs"
)

var EditTaskQueue = NewTaskQueue(100)
var closeOnce sync.Once

func exeEditTask(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()
	for {
		select {
		case task, ok := <-EditTaskQueue:
			if !ok {
				return
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				task.Execute(ctx)
			}()
		case <-ctx.Done():
			closeOnce.Do(func() {
				close(EditTaskQueue)
				logs.Logger.Info().Msg("edit task queue closed")
			})
		}
	}
}

func InitEditTaskQueue(ctx context.Context, wg *sync.WaitGroup) {
	wg.Add(1)
	go exeEditTask(ctx, wg)
}
