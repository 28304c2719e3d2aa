package version

import (
	"runtime/debug"
	"time"
)

// Set at link time by the release build; otherwise derived from the build info.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type Info struct {
	Version string
	Commit  string
	Date    string
}

func Get() Info {
	info := Info{Version: version, Commit: commit, Date: date}

	build, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	return fromBuildInfo(info, build)
}

func fromBuildInfo(info Info, build *debug.BuildInfo) Info {
	if v := build.Main.Version; v != "" && v != "(devel)" && info.Version == "dev" {
		info.Version = v
	}

	for _, setting := range build.Settings {
		switch setting.Key {
		case "vcs.revision":
			if info.Commit != "unknown" || setting.Value == "" {
				continue
			}
			info.Commit = setting.Value[:min(len(setting.Value), 7)]

		case "vcs.time":
			if info.Date != "unknown" {
				continue
			}
			if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
				info.Date = t.Format("02/01/2006")
			}
		}
	}

	return info
}
