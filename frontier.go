package slider

// frontierEntry is one discovered-but-unexpanded state: its A* priority
// (g + h), the insertion sequence number that breaks priority ties, and the
// move path that reached it.
type frontierEntry struct {
	priority     int
	seq          uint64
	board        Board
	moves        []int
	indexInQueue int
}

// frontier is a binary min-heap ordered by (priority, seq). Equal priorities
// resolve to the earlier insertion, which keeps expansion order, and with it
// the returned path, deterministic.
type frontier []*frontierEntry

func (queue frontier) Len() int { return len(queue) }

func (queue frontier) Less(i, j int) bool {
	if queue[i].priority != queue[j].priority {
		return queue[i].priority < queue[j].priority
	}
	return queue[i].seq < queue[j].seq
}

func (queue frontier) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].indexInQueue = i
	queue[j].indexInQueue = j
}

func (queue *frontier) Push(x any) {
	entry := x.(*frontierEntry)
	entry.indexInQueue = len(*queue)
	*queue = append(*queue, entry)
}

func (queue *frontier) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	entry := oldQueue[n-1]
	oldQueue[n-1] = nil
	*queue = oldQueue[:n-1]
	return entry
}
