// Package featureflags evaluates FEATURE_FLAGS rollouts per user.
package featureflags

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strconv"
	"strings"
)

// Flags understood by the application.
const (
	// LikeCounterSync couples like toggles on posts to Post.like_count.
	LikeCounterSync = "like_counter_sync"
	// ViewActionLog records a view action log for authenticated post reads.
	ViewActionLog = "view_action_log"
)

// Known lists the flags reported by Snapshot even when unset.
var Known = []string{LikeCounterSync, ViewActionLog}

// Manager evaluates flags defined in a key=value list such as
// "like_counter_sync=on,view_action_log=25%". Unset flags are off.
type Manager struct {
	flags map[string]string
}

// NewManager parses a comma-separated config string. Malformed pairs are skipped.
func NewManager(raw string) *Manager {
	out := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		key, value = normalize(key), normalize(value)
		if key == "" || value == "" {
			continue
		}
		out[key] = value
	}
	return &Manager{flags: out}
}

// Enabled returns whether a flag is enabled for a given user.
// Values: on/true/1, off/false/0, or N% for a deterministic per-user rollout.
// Percentage rollouts never include the anonymous user (id 0).
func (m *Manager) Enabled(name string, userID uint) bool {
	if m == nil {
		return false
	}
	value, ok := m.flags[normalize(name)]
	if !ok {
		return false
	}

	switch value {
	case "on", "true", "1":
		return true
	case "off", "false", "0":
		return false
	}

	pctRaw, isPct := strings.CutSuffix(value, "%")
	if !isPct {
		return false
	}
	pct, err := strconv.Atoi(pctRaw)
	switch {
	case err != nil, pct <= 0:
		return false
	case pct >= 100:
		return true
	case userID == 0:
		return false
	}
	return rolloutBucket(name, userID) < pct
}

// ForUser returns a predicate bound to one flag, for components that only
// need to ask "is this on for that user".
func (m *Manager) ForUser(name string) func(userID uint) bool {
	return func(userID uint) bool { return m.Enabled(name, userID) }
}

// Raw returns a copy of configured flags.
func (m *Manager) Raw() map[string]string {
	if m == nil {
		return map[string]string{}
	}
	out := make(map[string]string, len(m.flags))
	for k, v := range m.flags {
		out[k] = v
	}
	return out
}

// Names returns the configured and known flag names, sorted.
func (m *Manager) Names() []string {
	seen := make(map[string]struct{}, len(Known))
	names := make([]string, 0, len(Known))
	add := func(n string) {
		if _, ok := seen[n]; !ok {
			seen[n] = struct{}{}
			names = append(names, n)
		}
	}
	for _, n := range Known {
		add(n)
	}
	for n := range m.Raw() {
		add(n)
	}
	sort.Strings(names)
	return names
}

// Snapshot returns evaluated flag status for one user.
func (m *Manager) Snapshot(userID uint) map[string]bool {
	names := m.Names()
	out := make(map[string]bool, len(names))
	for _, name := range names {
		out[name] = m.Enabled(name, userID)
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func rolloutBucket(name string, userID uint) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(fmt.Sprintf("%s:%d", normalize(name), userID)))
	return int(h.Sum32() % 100)
}
