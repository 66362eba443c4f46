package main

import (
	"strings"

	"elevatorbank/src/types"

	"github.com/eiannone/keyboard"
)

const (
	hallUpKeys   = "123456789"
	hallDownKeys = "qwertyuio"
)

// cabKeys[i] holds the cab buttons of elevator i, floor 1 first.
var cabKeys = []string{"asdfghjkl", "zxcvbnm"}

const keyHelp = "keys: 1-9 hall up, q-o hall down, a-l cab car 0, z-m cab car 1, esc quits"

// keyToRequest maps a key press to a button press. ok is false for unmapped keys.
func keyToRequest(r rune) (Request, bool) {
	if i := strings.IndexRune(hallUpKeys, r); i >= 0 {
		return Request{ElevatorID: -1, Floor: i + 1, Dir: types.Up}, true
	}
	if i := strings.IndexRune(hallDownKeys, r); i >= 0 {
		return Request{ElevatorID: -1, Floor: i + 1, Dir: types.Down}, true
	}
	for id, keys := range cabKeys {
		if i := strings.IndexRune(keys, r); i >= 0 {
			return Request{ElevatorID: id, Floor: i + 1, Dir: types.Stop}, true
		}
	}
	return Request{}, false
}

// listenKeys forwards mapped key presses until esc or ctrl-c, then closes the returned channel.
func listenKeys() (<-chan Request, error) {
	events, err := keyboard.GetKeys(10)
	if err != nil {
		return nil, err
	}
	requests := make(chan Request)
	go func() {
		defer close(requests)
		defer keyboard.Close()
		for event := range events {
			if event.Err != nil || event.Key == keyboard.KeyEsc || event.Key == keyboard.KeyCtrlC {
				return
			}
			if req, ok := keyToRequest(event.Rune); ok {
				requests <- req
			}
		}
	}()
	return requests, nil
}
