package line_tracking

import (
	"errors"
	"fmt"
	"github.com/spf13/viper"
	"strings"
	"tracking-line/dto"
	"tracking-line/pkg/utils"
)

var (
	ErrMissingTagId       = errors.New("missing LINE tag id")
	ErrMissingAccessToken = errors.New("missing LINE access token")
)

// GetTagByCode reads the tag configured under tracking.<code>
func GetTagByCode(code string) (*dto.Tag, error) {
	return ParseLineTag(viper.GetString(fmt.Sprintf("tracking.%v", code)))
}

// ParseLineTag parses "tagId/accessToken[/channelId]".
func ParseLineTag(raw string) (*dto.Tag, error) {
	parts := strings.Split(raw, "/")

	tag := &dto.Tag{}
	tag.Id = strings.Trim(parts[0], " \t\n")
	if len(tag.Id) == 0 {
		return nil, ErrMissingTagId
	}

	if len(parts) > 1 {
		tag.AccessToken = strings.Trim(parts[1], " \t\n")
	}
	if len(tag.AccessToken) == 0 {
		return nil, ErrMissingAccessToken
	}

	// channel id is optional
	if len(parts) > 2 {
		tag.ChannelId = strings.Trim(parts[2], " \t\n")
	}

	return tag, nil
}

// NewTagConfig builds the invocation settings of a tag, taking cookie and test switches from config.
func NewTagConfig(tag *dto.Tag, event, eventName string) *dto.TagConfig {
	return &dto.TagConfig{
		Event:        event,
		LineTagId:    tag.Id,
		AccessToken:  tag.AccessToken,
		ChannelId:    tag.ChannelId,
		EnableCookie: viper.GetBool("tracking.enable_cookie"),
		EventName:    eventName,
		TestFlag:     utils.ViperGetOptionalBool("tracking.test_flag"),
	}
}
