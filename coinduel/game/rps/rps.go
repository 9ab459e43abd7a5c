// Package rps implements the rock/paper/scissors rules. It is pure: no
// state, no randomness side effects beyond Random, and no knowledge of
// coins or players.
package rps

import (
	"errors"
	"math/rand"
	"strings"
)

type Choice string

const (
	Rock     Choice = "rock"
	Paper    Choice = "paper"
	Scissors Choice = "scissors"
)

var ErrInvalidChoice = errors.New("choice must be rock, paper, or scissors")

// Choices lists the playable moves in display order.
var Choices = []Choice{Rock, Paper, Scissors}

// beats maps a choice to the choice it defeats.
var beats = map[Choice]Choice{
	Rock:     Scissors,
	Scissors: Paper,
	Paper:    Rock,
}

// Parse normalizes user input into a Choice.
func Parse(s string) (Choice, error) {
	switch c := Choice(strings.ToLower(strings.TrimSpace(s))); c {
	case Rock, Paper, Scissors:
		return c, nil
	default:
		return "", ErrInvalidChoice
	}
}

// Random returns a uniformly random house move.
func Random() Choice {
	return Choices[rand.Intn(len(Choices))]
}

type Result int

const (
	Draw Result = iota
	AWins
	BWins
)

func (r Result) String() string {
	switch r {
	case AWins:
		return "a_wins"
	case BWins:
		return "b_wins"
	default:
		return "draw"
	}
}

// Resolve returns the outcome of a against b. It is total over the 3x3
// input space; Resolve(x, y) is always the mirror of Resolve(y, x).
func Resolve(a, b Choice) Result {
	switch {
	case a == b:
		return Draw
	case beats[a] == b:
		return AWins
	default:
		return BWins
	}
}
