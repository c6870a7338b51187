package mocks

import (
	"time"

	gomock "github.com/golang/mock/gomock"
)

// GetMockedConfig returns a config that answers every settings key with a valid value.
func GetMockedConfig(ctrl *gomock.Controller) *MockConfig {
	config := NewMockConfig(ctrl)
	config.EXPECT().GetInt("port").Return(3333).AnyTimes()
	config.EXPECT().GetString("hostname").Return("").AnyTimes()
	config.EXPECT().GetBytes("api_key").Return([]byte("test-key")).AnyTimes()
	config.EXPECT().GetString("passphrase").Return("").AnyTimes()
	config.EXPECT().GetBool("verbose").Return(true).AnyTimes()
	config.EXPECT().GetString("log.level").Return("").AnyTimes()
	config.EXPECT().GetString("easynews.url").Return("https://members.easynews.com/1.0/global5/index.html").AnyTimes()
	config.EXPECT().GetString("easynews.username").Return("user").AnyTimes()
	config.EXPECT().GetString("easynews.password").Return("secret").AnyTimes()
	config.EXPECT().GetDuration("easynews.timeout").Return(20 * time.Second).AnyTimes()
	config.EXPECT().GetInt("easynews.page_size").Return(100).AnyTimes()
	config.EXPECT().GetString("easynews.proxy").Return("").AnyTimes()
	config.EXPECT().GetString("easynews.debug_http").Return("").AnyTimes()
	config.EXPECT().GetBool("metadata.enabled").Return(false).AnyTimes()
	config.EXPECT().GetDuration("metadata.timeout").Return(5 * time.Second).AnyTimes()
	config.EXPECT().GetBool("search.series_filter").Return(false).AnyTimes()
	config.EXPECT().GetBool("server.pprof").Return(false).AnyTimes()
	config.EXPECT().GetString("log.file").Return("").AnyTimes()
	config.EXPECT().GetInt("log.max_size_mb").Return(50).AnyTimes()
	config.EXPECT().GetInt("log.max_backups").Return(3).AnyTimes()
	config.EXPECT().GetInt("log.max_age_days").Return(28).AnyTimes()
	return config
}
