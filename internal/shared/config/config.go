package config

import (
	"os"
	"path/filepath"
)

// 约定：
// 1) 传入的路径（相对/绝对）优先；
// 2) 否则从当前目录开始向上查找 defaultRelPath；
// 3) 都找不到时返回空串，由调用方决定是否使用默认值。
func Resolve(cfgName, defaultRelPath string) string {
	if cfgName != "" {
		if filepath.IsAbs(cfgName) {
			return cfgName
		}
		curDir, err := os.Getwd()
		if err != nil {
			return cfgName
		}
		return filepath.Join(curDir, cfgName)
	}

	curDir, err := os.Getwd()
	if err != nil {
		return ""
	}
	return findConfigUpward(curDir, defaultRelPath)
}

func findConfigUpward(startDir, relPath string) string {
	dir := startDir
	for {
		candidate := filepath.Join(dir, relPath)
		if fileExist(candidate) {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func fileExist(fileName string) bool {
	st, err := os.Stat(fileName)
	return err == nil && !st.IsDir()
}
