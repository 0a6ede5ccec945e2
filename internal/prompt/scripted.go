// Copyright 2026 The MonoCloud CLI Authors
// SPDX-License-Identifier: MIT

package prompt

import (
	"fmt"
)

type answerKind int

const (
	answerText answerKind = iota
	answerConfirm
	answerSelect
	answerDefault
	answerCancel
)

// Answer is one scripted reply.
type Answer struct {
	kind   answerKind
	text   string
	yes    bool
	choice int
}

// Type answers a Text question with s.
func Type(s string) Answer { return Answer{kind: answerText, text: s} }

// Yes answers a Confirm question affirmatively.
func Yes() Answer { return Answer{kind: answerConfirm, yes: true} }

// No answers a Confirm question negatively.
func No() Answer { return Answer{kind: answerConfirm} }

// Choose answers a Select question with index i.
func Choose(i int) Answer { return Answer{kind: answerSelect, choice: i} }

// Enter accepts the default of any question.
func Enter() Answer { return Answer{kind: answerDefault} }

// Cancel simulates Ctrl+C.
func Cancel() Answer { return Answer{kind: answerCancel} }

// Scripted is a Prompter that replays a fixed list of answers. Text answers
// are run through the question's validator; a rejected answer is recorded
// in Rejections and the next answer is consumed, as a terminal re-ask would.
type Scripted struct {
	Answers []Answer

	// Asked records every question message, colors stripped, in order.
	Asked []string
	// Rejections records validator messages for rejected Text answers.
	Rejections []string
}

// NewScripted returns a Scripted prompter replaying answers.
func NewScripted(answers ...Answer) *Scripted {
	return &Scripted{Answers: answers}
}

// Remaining returns the number of unused answers.
func (s *Scripted) Remaining() int { return len(s.Answers) }

func (s *Scripted) next(message string) (Answer, error) {
	if len(s.Answers) == 0 {
		return Answer{}, fmt.Errorf("prompt: no scripted answer for %q", plain(message))
	}
	a := s.Answers[0]
	s.Answers = s.Answers[1:]
	if a.kind == answerCancel {
		return a, ErrCancelled
	}
	return a, nil
}

// Text implements Prompter.
func (s *Scripted) Text(q Text) (string, error) {
	s.Asked = append(s.Asked, plain(q.Message))
	for {
		a, err := s.next(q.Message)
		if err != nil {
			return "", err
		}
		var v string
		switch a.kind {
		case answerText:
			v = a.text
		case answerDefault:
			v = q.Default
		default:
			return "", fmt.Errorf("prompt: %q is a text question, scripted answer is not", plain(q.Message))
		}
		if q.Validate != nil {
			if err := q.Validate(v); err != nil {
				s.Rejections = append(s.Rejections, err.Error())
				continue
			}
		}
		return v, nil
	}
}

// Confirm implements Prompter.
func (s *Scripted) Confirm(q Confirm) (bool, error) {
	s.Asked = append(s.Asked, plain(q.Message))
	a, err := s.next(q.Message)
	if err != nil {
		return false, err
	}
	switch a.kind {
	case answerConfirm:
		return a.yes, nil
	case answerDefault:
		return q.Default, nil
	}
	return false, fmt.Errorf("prompt: %q is a yes/no question, scripted answer is not", plain(q.Message))
}

// Select implements Prompter.
func (s *Scripted) Select(q Select) (int, error) {
	s.Asked = append(s.Asked, plain(q.Message))
	if err := q.check(); err != nil {
		return 0, err
	}
	a, err := s.next(q.Message)
	if err != nil {
		return 0, err
	}
	switch a.kind {
	case answerSelect:
		if a.choice < 0 || a.choice >= len(q.Choices) {
			return 0, fmt.Errorf("prompt: scripted choice %d out of range for %q", a.choice, plain(q.Message))
		}
		return a.choice, nil
	case answerDefault:
		return q.Default, nil
	}
	return 0, fmt.Errorf("prompt: %q is a select question, scripted answer is not", plain(q.Message))
}

var _ Prompter = (*Scripted)(nil)
