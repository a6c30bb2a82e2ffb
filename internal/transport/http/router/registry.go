package router

import (
	"sort"

	"github.com/gin-gonic/gin"
)

// APIModule mounts its routes on the API root group.
type APIModule interface{ MountAPI(*gin.RouterGroup) }

// Modules implementing prioritizer mount in ascending order; others get 100.
type prioritizer interface{ Priority() int }

// Registry collects the modules one engine mounts.
type Registry struct {
	mods []APIModule
}

func NewRegistry(mods ...APIModule) *Registry {
	r := &Registry{}
	r.Register(mods...)
	return r
}

func (r *Registry) Register(mods ...APIModule) {
	for _, m := range mods {
		if m != nil {
			r.mods = append(r.mods, m)
		}
	}
}

// MountAll mounts every registered module on g, lowest priority first.
func (r *Registry) MountAll(g *gin.RouterGroup) {
	mods := append([]APIModule(nil), r.mods...)
	sort.SliceStable(mods, func(i, j int) bool {
		return priorityOf(mods[i]) < priorityOf(mods[j])
	})
	for _, m := range mods {
		m.MountAPI(g)
	}
}

func priorityOf(v any) int {
	if p, ok := v.(prioritizer); ok {
		return p.Priority()
	}
	return 100
}
