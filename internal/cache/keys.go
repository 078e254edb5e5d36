package cache

import (
	"fmt"
	"time"
)

const (
	BoardKeyPrefix       = "board:%d"
	ChurchKeyPrefix      = "church:%d"
	ActionCountKeyPrefix = "actions:count:%s:%d:%s"
	PublicSettingsKey    = "settings:system:public"
)

const (
	BoardTTL          = 10 * time.Minute
	ChurchTTL         = 10 * time.Minute
	ActionCountTTL    = 30 * time.Second
	PublicSettingsTTL = 5 * time.Minute
)

func BoardKey(boardID uint) string {
	return fmt.Sprintf(BoardKeyPrefix, boardID)
}

func ChurchKey(churchID uint) string {
	return fmt.Sprintf(ChurchKeyPrefix, churchID)
}

// ActionCountKey identifies the cached active count for one target and action.
func ActionCountKey(targetType string, targetID uint, actionType string) string {
	return fmt.Sprintf(ActionCountKeyPrefix, targetType, targetID, actionType)
}
