package config_test

import (
	"os"
	"path/filepath"
	"time"

	"github.com/acrmp/postbot/config"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var envVars = []string{
	"GEMINI_API_KEY",
	"ANTHROPIC_API_KEY",
	"POSTBOT_PROVIDER",
	"POSTBOT_BASE_URL",
	"POSTBOT_MODEL",
	"POSTBOT_ADDR",
	"POSTBOT_KEYPRESS",
	"POSTBOT_KEYPRESS_COMMAND",
	"POSTBOT_BROWSER_DIR",
	"POSTBOT_TIMEZONE",
	"POSTBOT_HEADLESS",
	"POSTBOT_LOAD_WAIT",
	"POSTBOT_SCHEDULE_LEAD",
}

var _ = Describe("Load", func() {

	var dir string

	setenv := func(key, value string) {
		Expect(os.Setenv(key, value)).To(Succeed())
	}

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "config")
		Expect(err).ToNot(HaveOccurred())

		for _, k := range envVars {
			if v, ok := os.LookupEnv(k); ok {
				DeferCleanup(os.Setenv, k, v)
			} else {
				DeferCleanup(os.Unsetenv, k)
			}
			Expect(os.Unsetenv(k)).To(Succeed())
		}
	})

	AfterEach(func() {
		Expect(os.RemoveAll(dir)).To(Succeed())
	})

	Context("when only the API key is set", func() {
		BeforeEach(func() {
			setenv("GEMINI_API_KEY", "secret")
		})
		It("uses the defaults", func() {
			cfg, err := config.Load("", "", false)
			Expect(err).ToNot(HaveOccurred())

			Expect(cfg.APIKey).To(Equal("secret"))
			Expect(cfg.Provider).To(Equal(config.ProviderOpenAI))
			Expect(cfg.BaseURL).To(Equal("https://generativelanguage.googleapis.com/v1beta/openai"))
			Expect(cfg.Model).To(Equal("gemini-2.0-flash"))
			Expect(cfg.DefaultPhone).To(Equal("+923001234567"))
			Expect(cfg.ScheduleLead).To(Equal(time.Minute))
			Expect(cfg.LoadWait).To(Equal(15 * time.Second))
			Expect(cfg.Keypress).To(Equal(config.KeypressBrowser))
			Expect(cfg.Debug).To(BeFalse())
		})
	})

	Context("when the API key is missing", func() {
		It("errors naming the environment variable", func() {
			_, err := config.Load("", "", false)
			Expect(err).To(MatchError("GEMINI_API_KEY not found in environment or .env"))
		})

		Context("for the anthropic provider", func() {
			BeforeEach(func() {
				setenv("POSTBOT_PROVIDER", "anthropic")
				setenv("GEMINI_API_KEY", "not-this-one")
			})
			It("names the anthropic variable", func() {
				_, err := config.Load("", "", false)
				Expect(err).To(MatchError("ANTHROPIC_API_KEY not found in environment or .env"))
			})
		})
	})

	Context("when a .env file provides the API key", func() {
		var envFile string

		BeforeEach(func() {
			envFile = filepath.Join(dir, ".env")
			err := os.WriteFile(envFile, []byte("GEMINI_API_KEY=from-dotenv\n"), 0600)
			Expect(err).ToNot(HaveOccurred())
			DeferCleanup(os.Unsetenv, "GEMINI_API_KEY")
		})
		It("uses it", func() {
			cfg, err := config.Load("", envFile, false)
			Expect(err).ToNot(HaveOccurred())
			Expect(cfg.APIKey).To(Equal("from-dotenv"))
		})

		Context("when the environment also sets it", func() {
			BeforeEach(func() {
				setenv("GEMINI_API_KEY", "from-env")
			})
			It("prefers the environment", func() {
				cfg, err := config.Load("", envFile, false)
				Expect(err).ToNot(HaveOccurred())
				Expect(cfg.APIKey).To(Equal("from-env"))
			})
		})
	})

	Context("when the .env file does not exist", func() {
		BeforeEach(func() {
			setenv("GEMINI_API_KEY", "secret")
		})
		It("ignores it", func() {
			_, err := config.Load("", filepath.Join(dir, "missing.env"), false)
			Expect(err).ToNot(HaveOccurred())
		})
	})

	Context("when a config file is provided", func() {
		var path string

		BeforeEach(func() {
			path = filepath.Join(dir, "postbot.yaml")
			err := os.WriteFile(path, []byte(`
provider: gemini
api_key: from-yaml
model: gemini-2.5-flash
temperature: 0.4
addr: 127.0.0.1:9000
default_phone: "+441234567890"
schedule_lead: 0s
load_wait: 20s
keypress: command
keypress_command: xdotool key KP_Enter
headless: true
timezone: Asia/Karachi
`), 0600)
			Expect(err).ToNot(HaveOccurred())
		})

		It("overrides the defaults", func() {
			cfg, err := config.Load(path, "", true)
			Expect(err).ToNot(HaveOccurred())

			Expect(cfg.Provider).To(Equal(config.ProviderGemini))
			Expect(cfg.APIKey).To(Equal("from-yaml"))
			Expect(cfg.Model).To(Equal("gemini-2.5-flash"))
			Expect(cfg.Temperature).To(BeNumerically("~", 0.4))
			Expect(cfg.Addr).To(Equal("127.0.0.1:9000"))
			Expect(cfg.DefaultPhone).To(Equal("+441234567890"))
			Expect(cfg.ScheduleLead).To(BeZero())
			Expect(cfg.LoadWait).To(Equal(20 * time.Second))
			Expect(cfg.Keypress).To(Equal(config.KeypressCommand))
			Expect(cfg.KeypressCommand).To(Equal("xdotool key KP_Enter"))
			Expect(cfg.Headless).To(BeTrue())
			Expect(cfg.Debug).To(BeTrue())

			loc, err := cfg.Location()
			Expect(err).ToNot(HaveOccurred())
			Expect(loc.String()).To(Equal("Asia/Karachi"))
		})

		Context("when the environment overrides the file", func() {
			BeforeEach(func() {
				setenv("POSTBOT_MODEL", "gemini-2.0-flash-lite")
				setenv("POSTBOT_LOAD_WAIT", "5s")
				setenv("POSTBOT_HEADLESS", "false")
			})
			It("prefers the environment", func() {
				cfg, err := config.Load(path, "", false)
				Expect(err).ToNot(HaveOccurred())
				Expect(cfg.Model).To(Equal("gemini-2.0-flash-lite"))
				Expect(cfg.LoadWait).To(Equal(5 * time.Second))
				Expect(cfg.Headless).To(BeFalse())
			})
		})
	})

	Context("when the config file does not exist", func() {
		It("errors", func() {
			_, err := config.Load(filepath.Join(dir, "missing.yaml"), "", false)
			Expect(err).To(MatchError(ContainSubstring("load config file")))
		})
	})

	Context("when the config file is not valid YAML", func() {
		It("errors", func() {
			path := filepath.Join(dir, "bad.yaml")
			Expect(os.WriteFile(path, []byte("provider: [openai"), 0600)).To(Succeed())
			_, err := config.Load(path, "", false)
			Expect(err).To(MatchError(ContainSubstring("load config file")))
		})
	})

	DescribeTable("rejecting invalid settings",
		func(key, value, message string) {
			setenv("GEMINI_API_KEY", "secret")
			setenv(key, value)
			_, err := config.Load("", "", false)
			Expect(err).To(MatchError(ContainSubstring(message)))
		},
		Entry("unknown provider", "POSTBOT_PROVIDER", "cohere", `unsupported provider "cohere"`),
		Entry("unknown keypress", "POSTBOT_KEYPRESS", "telepathy", `unsupported keypress "telepathy"`),
		Entry("unparseable load wait", "POSTBOT_LOAD_WAIT", "soon", "POSTBOT_LOAD_WAIT"),
		Entry("negative load wait", "POSTBOT_LOAD_WAIT", "-1s", "must not be negative"),
		Entry("unparseable headless", "POSTBOT_HEADLESS", "maybe", "POSTBOT_HEADLESS"),
		Entry("unknown timezone", "POSTBOT_TIMEZONE", "Mars/Olympus", "timezone"),
	)
})

var _ = Describe("Load for the anthropic provider", func() {
	BeforeEach(func() {
		for _, k := range envVars {
			if v, ok := os.LookupEnv(k); ok {
				DeferCleanup(os.Setenv, k, v)
			} else {
				DeferCleanup(os.Unsetenv, k)
			}
			Expect(os.Unsetenv(k)).To(Succeed())
		}
		Expect(os.Setenv("POSTBOT_PROVIDER", "anthropic")).To(Succeed())
		Expect(os.Setenv("ANTHROPIC_API_KEY", "secret")).To(Succeed())
	})

	It("defaults to a claude model", func() {
		cfg, err := config.Load("", "", false)
		Expect(err).ToNot(HaveOccurred())
		Expect(cfg.APIKey).To(Equal("secret"))
		Expect(cfg.Model).To(Equal("claude-3-5-sonnet-20240620"))
	})
})
