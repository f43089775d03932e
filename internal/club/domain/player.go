package domain

// Player 是球员记录的快照。UID 唯一性由数据文件保证，这里不做校验。
type Player struct {
	UID    int             `json:"UID"`
	Name   string          `json:"name"`
	Skills []SkillCategory `json:"skills"`
}

// SkillCategory 是某个球员名下的技能分类，名称只在该球员内唯一。
type SkillCategory struct {
	Category string   `json:"category"`
	Skills   []Skill  `json:"skills,omitempty"`
	Notes    []string `json:"notes,omitempty"`
}

type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// CategoryNames 按文件顺序列出分类名，供选择列表使用。
func (p Player) CategoryNames() []string {
	names := make([]string, 0, len(p.Skills))
	for _, c := range p.Skills {
		names = append(names, c.Category)
	}
	return names
}
