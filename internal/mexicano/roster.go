package mexicano

import "strings"

// AddPlayer appends a player to the roster with zeroed total and bye count.
// Names are trimmed and must be unique under Turkish case-insensitive
// comparison.
func (s State) AddPlayer(name string) (State, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return s, ErrEmptyPlayerName
	}
	if s.indexOf(name) >= 0 {
		return s, ErrDuplicatePlayer
	}
	out := s.clone()
	out.Players = append(out.Players, name)
	out.Totals[name] = 0
	out.ByeCounts[name] = 0
	return out, nil
}

// RemovePlayer drops a player and their total and bye count.
func (s State) RemovePlayer(name string) (State, error) {
	idx := s.indexOf(strings.TrimSpace(name))
	if idx < 0 {
		return s, ErrUnknownPlayer
	}
	out := s.clone()
	stored := out.Players[idx]
	out.Players = append(out.Players[:idx], out.Players[idx+1:]...)
	delete(out.Totals, stored)
	delete(out.ByeCounts, stored)
	return out, nil
}

// RenamePlayer changes a player's display name, carrying their cumulative
// total and bye count over to the new name and removing the old key.
func (s State) RenamePlayer(oldName, newName string) (State, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return s, ErrEmptyPlayerName
	}
	idx := s.indexOf(strings.TrimSpace(oldName))
	if idx < 0 {
		return s, ErrUnknownPlayer
	}
	if other := s.indexOf(newName); other >= 0 && other != idx {
		return s, ErrDuplicatePlayer
	}

	out := s.clone()
	stored := out.Players[idx]
	if stored == newName {
		return out, nil
	}
	out.Players[idx] = newName
	out.Totals[newName] = out.Totals[stored]
	out.ByeCounts[newName] = out.ByeCounts[stored]
	delete(out.Totals, stored)
	delete(out.ByeCounts, stored)
	return out, nil
}
