package settings

type Settings struct {
	// GitRoot anchors relative patch targets to the enclosing git worktree
	// root instead of the working directory.
	GitRoot bool   `yaml:"git_root,omitempty"`
	RootDir string `yaml:"root_dir,omitempty"`
}
