package clubconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_无配置文件时使用默认值(t *testing.T) {
	t.Chdir(t.TempDir())

	conf, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "data", conf.Store.DataDir)
	require.Equal(t, "players.json", conf.Store.PlayersFile)
	require.Equal(t, "squads.json", conf.Store.SquadsFile)
	require.False(t, conf.Store.Cache)
	require.Equal(t, "info", conf.Log.Level)
}

func TestLoad_向上查找configs目录(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "configs", "conf.yml"), []byte(`
store:
  data_dir: /srv/club
  cache: true
log:
  level: debug
`), 0o644))
	sub := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	t.Chdir(sub)

	conf, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "/srv/club", conf.Store.DataDir)
	require.True(t, conf.Store.Cache)
	require.Equal(t, "debug", conf.Log.Level)
	// 文件未覆盖的键保持默认值
	require.Equal(t, "squads.json", conf.Store.SquadsFile)
}

func TestLoad_环境变量覆盖文件(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.yml")
	require.NoError(t, os.WriteFile(path, []byte("store:\n  data_dir: from-file\n"), 0o644))
	t.Setenv("CLUB_STORE_DATA_DIR", "from-env")

	conf, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "from-env"), conf.Store.DataDir)
}

func TestLoad_显式路径不存在应报错(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}

func TestLoad_相对data_dir以项目根目录为基准(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "configs", "conf.yml"), []byte("log:\n  level: warn\n"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "data"), 0o755))
	sub := filepath.Join(root, "cmd", "club")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	t.Chdir(sub)

	conf, err := Load("")
	require.NoError(t, err)
	require.True(t, filepath.IsAbs(conf.Store.DataDir), "data_dir=%s", conf.Store.DataDir)
	want, err := os.Stat(filepath.Join(root, "data"))
	require.NoError(t, err)
	got, err := os.Stat(conf.Store.DataDir)
	require.NoError(t, err)
	require.True(t, os.SameFile(want, got), "data_dir=%s", conf.Store.DataDir)
}
