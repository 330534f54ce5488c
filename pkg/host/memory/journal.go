package memory

import (
	"sync"
)

// Call is one journaled host call. Err holds the error the host returned,
// whether it came from a rule violation or an injected fault.
type Call struct {
	Target string `json:"target"`
	Method string `json:"method"`
	Args   any    `json:"args,omitempty"`
	Err    error  `json:"-"`
}

// FaultFunc lets tests fail any call. Returning a non-nil error makes the
// host reject the call without applying it.
type FaultFunc func(Call) error

// Option configures a memory Form or List.
type Option func(*journal)

// WithFault installs a fault hook evaluated before every call is applied.
func WithFault(fn FaultFunc) Option {
	return func(j *journal) {
		j.fault = fn
	}
}

// FailNth returns a FaultFunc failing the nth (1-based) call to method on any
// target.
func FailNth(method string, nth int, err error) FaultFunc {
	var mu sync.Mutex
	count := 0
	return func(call Call) error {
		if call.Method != method {
			return nil
		}
		mu.Lock()
		defer mu.Unlock()
		count++
		if count == nth {
			return err
		}
		return nil
	}
}

type journal struct {
	mu    sync.Mutex
	calls []Call
	fault FaultFunc
}

func newJournal(opts []Option) *journal {
	j := &journal{}
	for _, opt := range opts {
		if opt != nil {
			opt(j)
		}
	}
	return j
}

// record journals the call. apply runs only when no fault was injected and
// its result is stored on the entry.
func (j *journal) record(target, method string, args any, apply func() error) error {
	call := Call{Target: target, Method: method, Args: args}
	var err error
	if j.fault != nil {
		err = j.fault(call)
	}
	if err == nil && apply != nil {
		err = apply()
	}
	call.Err = err

	j.mu.Lock()
	j.calls = append(j.calls, call)
	j.mu.Unlock()
	return err
}

func (j *journal) snapshot() []Call {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]Call(nil), j.calls...)
}

// note journals a read. Reads never fail, so the fault hook is skipped.
func (j *journal) note(target, method string, args any) {
	j.mu.Lock()
	j.calls = append(j.calls, Call{Target: target, Method: method, Args: args})
	j.mu.Unlock()
}
