package config

import (
	"path"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/mitchellh/go-homedir"
	"github.com/onsi/gomega"
	log "github.com/sirupsen/logrus"

	"github.com/benkelly/easyznab/config/mocks"
)

func TestGetConfigDir(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	home, _ := homedir.Dir()
	g.Expect(GetConfigDir()).To(gomega.Equal(path.Join(home, ".easyznab")))
}

func TestLoad(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, err := Load(mocks.GetMockedConfig(ctrl))
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(s.Port).To(gomega.Equal(3333))
	g.Expect(s.Address()).To(gomega.Equal(":3333"))
	g.Expect(s.APIKey).To(gomega.Equal([]byte("test-key")))
	g.Expect(s.Easynews.Username).To(gomega.Equal("user"))
	g.Expect(s.Easynews.Timeout).To(gomega.Equal(20 * time.Second))
	g.Expect(s.Easynews.PageSize).To(gomega.Equal(100))
	g.Expect(s.MetadataTimeout).To(gomega.Equal(5 * time.Second))
	g.Expect(s.Log.MaxBackups).To(gomega.Equal(3))
}

func TestSettings_Validate(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	valid := func() Settings {
		return Settings{Port: 8000, Easynews: EasynewsSettings{PageSize: 100, Timeout: time.Second}}
	}
	s := valid()
	g.Expect(s.Validate()).To(gomega.Succeed())

	for name, mutate := range map[string]func(*Settings){
		"port":       func(s *Settings) { s.Port = 0 },
		"big port":   func(s *Settings) { s.Port = 70000 },
		"page size":  func(s *Settings) { s.Easynews.PageSize = 250 },
		"no page":    func(s *Settings) { s.Easynews.PageSize = 0 },
		"timeout":    func(s *Settings) { s.Easynews.Timeout = 0 },
		"debug http": func(s *Settings) { s.Easynews.DebugHTTP = "everything" },
		"lookups without timeout": func(s *Settings) {
			s.MetadataEnabled = true
			s.MetadataTimeout = 0
		},
	} {
		s := valid()
		mutate(&s)
		g.Expect(s.Validate()).ToNot(gomega.Succeed(), name)
	}
}

func TestSetDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := mocks.NewMockConfig(ctrl)
	cfg.EXPECT().IsSet(KeyPort).Return(true)
	cfg.EXPECT().IsSet(gomock.Any()).Return(false).Times(len(defaults) - 1)
	cfg.EXPECT().Set(gomock.Any(), gomock.Any()).Times(len(defaults) - 1)

	SetDefaults(cfg)
}

func TestGetMinLogLevel(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := mocks.NewMockConfig(ctrl)
	cfg.EXPECT().GetBool(KeyVerbose).Return(false).AnyTimes()
	cfg.EXPECT().GetString(KeyLogLevel).Return("warning")
	g.Expect(GetMinLogLevel(cfg)).To(gomega.Equal(log.WarnLevel))

	cfg.EXPECT().GetString(KeyLogLevel).Return("")
	g.Expect(GetMinLogLevel(cfg)).To(gomega.Equal(log.InfoLevel))
}
