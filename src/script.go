package main

import (
	"fmt"
	"strconv"
	"strings"

	"elevatorbank/src/types"
)

// Request is one scripted button press: a hall call when ElevatorID is -1, a cab call otherwise.
type Request struct {
	ElevatorID int
	Floor      int
	Dir        types.Direction
}

// parseCalls reads a comma separated script such as "5U,3D,c0:4".
//   - <floor>U / <floor>D press a hall button
//   - c<elevator>:<floor> presses a cab button
func parseCalls(script string) ([]Request, error) {
	var requests []Request
	for _, token := range strings.Split(script, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		req, err := parseCall(token)
		if err != nil {
			return nil, fmt.Errorf("call %q: %w", token, err)
		}
		requests = append(requests, req)
	}
	return requests, nil
}

func parseCall(token string) (Request, error) {
	if rest, ok := strings.CutPrefix(strings.ToLower(token), "c"); ok {
		idText, floorText, found := strings.Cut(rest, ":")
		if !found {
			return Request{}, fmt.Errorf("cab call needs c<elevator>:<floor>")
		}
		id, err := strconv.Atoi(idText)
		if err != nil {
			return Request{}, err
		}
		floor, err := strconv.Atoi(floorText)
		if err != nil {
			return Request{}, err
		}
		return Request{ElevatorID: id, Floor: floor, Dir: types.Stop}, nil
	}

	var dir types.Direction
	switch strings.ToUpper(token[len(token)-1:]) {
	case "U":
		dir = types.Up
	case "D":
		dir = types.Down
	default:
		return Request{}, fmt.Errorf("hall call must end in U or D")
	}
	floor, err := strconv.Atoi(token[:len(token)-1])
	if err != nil {
		return Request{}, err
	}
	return Request{ElevatorID: -1, Floor: floor, Dir: dir}, nil
}
