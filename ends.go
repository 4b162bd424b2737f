package pinlist

import "github.com/skipor/pinlist/arena"

// singlyEnds is the Ends value of a singly-linked list or slice: a
// single optional front pointer (spec.md §3).
type singlyEnds struct {
	front arena.Ref
}

func emptySinglyEnds() singlyEnds { return singlyEnds{front: arena.NoRef} }

func (e singlyEnds) isEmpty() bool { return !e.front.Valid() }

// doublyEnds is the Ends value of a doubly-linked list or slice: a
// {front, back} pair, each optional, with front==None iff back==None
// (spec.md §3).
type doublyEnds struct {
	front arena.Ref
	back  arena.Ref
}

func emptyDoublyEnds() doublyEnds { return doublyEnds{front: arena.NoRef, back: arena.NoRef} }

func (e doublyEnds) isEmpty() bool { return !e.front.Valid() }
