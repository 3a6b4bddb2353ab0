package execution

// Scheduler distributes work items, identified by index, across workers
type Scheduler interface {
	Schedule(count int, workerCount int) [][]int
}

// RoundRobinScheduler distributes items evenly across workers
type RoundRobinScheduler struct{}

// NewRoundRobinScheduler creates a new RoundRobinScheduler
func NewRoundRobinScheduler() *RoundRobinScheduler {
	return &RoundRobinScheduler{}
}

// Schedule assigns item i to worker i mod workerCount; each batch is in ascending order
func (s *RoundRobinScheduler) Schedule(count int, workerCount int) [][]int {
	if workerCount <= 0 {
		workerCount = 1
	}

	distribution := make([][]int, workerCount)
	for i := range distribution {
		distribution[i] = make([]int, 0, count/workerCount+1)
	}

	for i := 0; i < count; i++ {
		workerIndex := i % workerCount
		distribution[workerIndex] = append(distribution[workerIndex], i)
	}

	return distribution
}
