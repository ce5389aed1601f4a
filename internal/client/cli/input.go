package cli

import (
	"fmt"
	"strconv"
	"strings"
)

func (a *App) promptString(label string) (string, error) {
	fmt.Printf("%s: ", label)
	line, err := a.reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (a *App) promptInt(label string) (int, error) {
	s, err := a.promptString(label)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(s)
}

// promptOptionalFloat returns nil when the answer is left empty.
func (a *App) promptOptionalFloat(label string) (*float64, error) {
	s, err := a.promptString(label)
	if err != nil {
		return nil, err
	}
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseID(args []string) (int64, bool) {
	if len(args) == 0 {
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
