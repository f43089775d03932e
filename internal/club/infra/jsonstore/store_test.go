package jsonstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"SimplyRugby/internal/club/app/port"
	"SimplyRugby/internal/club/domain"
	"SimplyRugby/internal/shared/clubconfig"
	"SimplyRugby/modules/kit/errx"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

const playersJSON = `[
  {"UID": 7, "name": "A. Jones", "skills": [
    {"category": "Passing", "skills": [{"name": "Standard", "level": 4}], "notes": ["Good spin pass"]},
    {"category": "Tackling"}
  ], "position": "Fly-half"},
  {"UID": 12, "name": "B. Smith", "skills": []}
]`

func newTestStore(t *testing.T, opts ...Option) (*FileStore, string) {
	t.Helper()
	dir := t.TempDir()
	return NewFromConfig(clubconfig.StoreConfig{
		DataDir:     dir,
		PlayersFile: "players.json",
		SquadsFile:  "squads.json",
	}, opts...), dir
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestLoadPlayers_按文件顺序解析(t *testing.T) {
	s, dir := newTestStore(t)
	writeFile(t, filepath.Join(dir, "players.json"), playersJSON)

	res, err := s.LoadPlayers(context.Background())
	require.NoError(t, err)
	require.Equal(t, port.StatusLoaded, res.Status)
	require.Equal(t, port.KindPlayers, res.Kind)
	require.Equal(t, filepath.Join(dir, "players.json"), res.Path)

	want := []domain.Player{
		{UID: 7, Name: "A. Jones", Skills: []domain.SkillCategory{
			{Category: "Passing", Skills: []domain.Skill{{Name: "Standard", Level: 4}}, Notes: []string{"Good spin pass"}},
			{Category: "Tackling"},
		}},
		{UID: 12, Name: "B. Smith", Skills: []domain.SkillCategory{}},
	}
	if diff := cmp.Diff(want, res.Items); diff != "" {
		t.Fatalf("players mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadPlayers_字段名大小写不敏感且忽略未知字段(t *testing.T) {
	s, dir := newTestStore(t)
	writeFile(t, filepath.Join(dir, "players.json"), `[{"uid":9,"NAME":"x","position":"hooker","Skills":[{"CATEGORY":"passing"}]}]`)

	res, err := s.LoadPlayers(context.Background())
	require.NoError(t, err)
	want := []domain.Player{{UID: 9, Name: "x", Skills: []domain.SkillCategory{{Category: "passing"}}}}
	if diff := cmp.Diff(want, res.Items); diff != "" {
		t.Fatalf("players mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadSquads_解析队名(t *testing.T) {
	s, dir := newTestStore(t)
	writeFile(t, filepath.Join(dir, "squads.json"), `[{"squadName":"Seniors","players":[7,12]},{"squadName":"U16s"}]`)

	res, err := s.LoadSquads(context.Background())
	require.NoError(t, err)
	require.Equal(t, []domain.Squad{{Name: "Seniors", Players: []int{7, 12}}, {Name: "U16s"}}, res.Items)
}

func TestLoadAll_文件缺失返回Missing而不是错误(t *testing.T) {
	s, dir := newTestStore(t)

	res, err := s.LoadPlayers(context.Background())
	require.NoError(t, err)
	require.Equal(t, port.StatusMissing, res.Status)
	require.Empty(t, res.Items)
	require.Equal(t, filepath.Join(dir, "players.json"), res.Path)
	require.True(t, errors.Is(res.Cause, os.ErrNotExist), "cause=%v", res.Cause)
}

func TestLoadAll_路径是目录视为不可读(t *testing.T) {
	s, dir := newTestStore(t)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "squads.json"), 0o755))

	res, err := s.LoadSquads(context.Background())
	require.NoError(t, err)
	require.Equal(t, port.StatusMissing, res.Status)
	require.Error(t, res.Cause)
}

func TestLoadAll_内容损坏返回DataCorrupt(t *testing.T) {
	cases := map[string]string{
		"语法错误": `[{"UID": 7,`,
		"空文件":  ``,
		"不是数组": `{"UID": 7}`,
		"类型不符": `[{"UID": "seven"}]`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			s, dir := newTestStore(t)
			writeFile(t, filepath.Join(dir, "players.json"), body)

			_, err := s.LoadPlayers(context.Background())
			require.Error(t, err)
			require.ErrorIs(t, err, errx.ErrDataCorrupt)
			require.True(t, errx.IsSys(err))

			var e *errx.Error
			require.ErrorAs(t, err, &e)
			require.Equal(t, filepath.Join(dir, "players.json"), e.Data()["path"])
		})
	}
}

func TestLoadAll_JSON_null视为空序列(t *testing.T) {
	s, dir := newTestStore(t)
	writeFile(t, filepath.Join(dir, "squads.json"), `null`)

	res, err := s.LoadSquads(context.Background())
	require.NoError(t, err)
	require.Equal(t, port.StatusLoaded, res.Status)
	require.Empty(t, res.Items)
}

func TestLoadAll_每次调用都重新读取(t *testing.T) {
	s, dir := newTestStore(t)
	path := filepath.Join(dir, "squads.json")
	writeFile(t, path, `[{"squadName":"Seniors"}]`)

	first, err := s.LoadSquads(context.Background())
	require.NoError(t, err)
	require.Len(t, first.Items, 1)

	writeFile(t, path, `[{"squadName":"Seniors"},{"squadName":"U16s"}]`)
	second, err := s.LoadSquads(context.Background())
	require.NoError(t, err)
	require.Len(t, second.Items, 2)
}

func TestLoadAll_未知kind报参数错误(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := LoadAll[domain.Squad](context.Background(), s, port.Kind("coaches"))
	require.ErrorIs(t, err, errx.ErrReqParamERR)
}

func TestMetrics_按结果计数(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)
	s, dir := newTestStore(t, WithMetrics(m))

	_, _ = s.LoadPlayers(context.Background())
	writeFile(t, filepath.Join(dir, "players.json"), `[`)
	_, _ = s.LoadPlayers(context.Background())
	writeFile(t, filepath.Join(dir, "players.json"), playersJSON)
	_, _ = s.LoadPlayers(context.Background())
	_, _ = s.LoadPlayers(context.Background())

	require.Equal(t, 1.0, testutil.ToFloat64(m.loads.WithLabelValues("players", outcomeMissing)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.loads.WithLabelValues("players", outcomeCorrupt)))
	require.Equal(t, 2.0, testutil.ToFloat64(m.loads.WithLabelValues("players", outcomeLoaded)))

	_, err = NewMetrics(reg)
	require.Error(t, err, "重复注册应报错")
}
