// Package stack provides Stack, a generic LIFO container with bulk
// push/pop/drop and concatenation.
//
// The logical top is the most recently pushed item; the bottom is the
// least recently pushed one.
//
//	s := stack.New[string]()
//	s.Push("A", "B", "C")
//	top, _ := s.Peek()   // "C"
//	_, _ = s.Pop()       // removes "C"
//	_, _ = s.Drop()      // removes "A" (bottom)
//
// Popping or dropping more items than the stack holds returns ErrOutOfRange
// and leaves the stack unchanged. Iteration (All) runs top to bottom.
//
// Concatenation:
//   - Push / PushStack mutate the receiver (compound-assignment form).
//   - With / Concat return a new stack and leave both operands untouched.
//
// A Stack is not safe for concurrent mutation.
package stack
