package domain

import "strings"

// Squad 以名称为自然键；Players 为队内球员的 UID。
type Squad struct {
	Name    string `json:"squadName"`
	Players []int  `json:"players,omitempty"`
}

// Matches 比较队名，两边都转小写后再比。
func (s Squad) Matches(name string) bool {
	return strings.ToLower(s.Name) == strings.ToLower(name)
}
