package cpu

// Queue is a first-in first-out line of values; the inbox and outbox conveyors.
type Queue struct {
	Data []Value
}

// NewQueue creates a queue of tokens.
func NewQueue(tokens ...string) (q *Queue) {
	q = &Queue{}
	q.PushTokens(tokens...)
	return
}

// PushTokens appends tokens to the end of the queue.
func (q *Queue) PushTokens(tokens ...string) {
	for _, token := range tokens {
		q.Push(MakeValue(token))
	}
}

func (q *Queue) Push(value Value) {
	q.Data = append(q.Data, value)
}

func (q *Queue) Pop() (value Value, ok bool) {
	value, ok = q.Peek()
	if ok {
		q.Data = q.Data[1:]
	}
	return
}

func (q *Queue) Peek() (value Value, ok bool) {
	if q.Empty() {
		return
	}

	return q.Data[0], true
}

func (q *Queue) Empty() bool {
	return len(q.Data) == 0
}

func (q *Queue) Len() int {
	return len(q.Data)
}

func (q *Queue) Reset() {
	q.Data = nil
}

// Tokens returns a copy of the queue contents as tokens.
func (q *Queue) Tokens() (tokens []string) {
	tokens = make([]string, len(q.Data))
	for n, value := range q.Data {
		tokens[n] = value.Token
	}
	return
}
