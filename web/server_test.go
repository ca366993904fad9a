package web_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/acrmp/postbot/broadcast"
	"github.com/acrmp/postbot/web"
	"github.com/acrmp/postbot/web/webfakes"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
)

var _ = Describe("Server", func() {

	var (
		logOutput *gbytes.Buffer
		b         *webfakes.FakeBroadcaster
		server    *httptest.Server
	)

	BeforeEach(func() {
		logOutput = gbytes.NewBuffer()
		logger := slog.New(slog.NewTextHandler(logOutput, nil))

		b = &webfakes.FakeBroadcaster{}
		b.GenerateAndSendReturns(broadcast.Result{
			Outcome: broadcast.Sent,
			Content: "# Launch\n*New Product* is here & now.",
			Message: broadcast.SentMessage,
		})

		server = httptest.NewServer(web.NewServer(logger, b, "+923001234567"))
	})

	AfterEach(func() {
		server.Close()
	})

	body := func(resp *http.Response) string {
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		Expect(err).ToNot(HaveOccurred())
		return string(b)
	}

	submit := func(topic, phone string) *http.Response {
		resp, err := http.PostForm(server.URL+"/", url.Values{"topic": {topic}, "phone": {phone}})
		Expect(err).ToNot(HaveOccurred())
		return resp
	}

	Describe("GET /", func() {
		It("renders the form with the phone number pre-filled", func() {
			resp, err := http.Get(server.URL + "/")
			Expect(err).ToNot(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(resp.Header.Get("Content-Type")).To(HavePrefix("text/html"))

			page := body(resp)
			Expect(page).To(ContainSubstring("WhatsApp Channel Post Bot"))
			Expect(page).To(ContainSubstring(`<textarea id="topic" name="topic"></textarea>`))
			Expect(page).To(ContainSubstring(`value="&#43;923001234567"`))
			Expect(page).To(ContainSubstring("Generate &amp; Send to WhatsApp"))
			Expect(page).ToNot(ContainSubstring("Generated Post"))
		})

		It("does not run the broadcaster", func() {
			_, err := http.Get(server.URL + "/")
			Expect(err).ToNot(HaveOccurred())
			Expect(b.GenerateAndSendCallCount()).To(Equal(0))
		})

		It("logs the request", func() {
			_, err := http.Get(server.URL + "/")
			Expect(err).ToNot(HaveOccurred())
			Eventually(logOutput).Should(gbytes.Say(`request method=GET path=/ status=200`))
		})
	})

	Describe("POST /", func() {
		It("runs the broadcaster with the submitted topic and phone number", func() {
			resp := submit("new product launch", "+923001234567")
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			Expect(b.GenerateAndSendCallCount()).To(Equal(1))
			_, topic, phone := b.GenerateAndSendArgsForCall(0)
			Expect(topic).To(Equal("new product launch"))
			Expect(phone).To(Equal("+923001234567"))
		})

		It("shows the generated post and the success message", func() {
			page := body(submit("new product launch", "+923001234567"))
			Expect(page).To(ContainSubstring("Generated Post"))
			Expect(page).To(ContainSubstring("<pre><code># Launch\n*New Product* is here &amp; now.</code></pre>"))
			Expect(page).To(ContainSubstring(`<div class="box success">Message sent directly on WhatsApp!</div>`))
		})

		It("keeps the submitted topic in the form", func() {
			page := body(submit("new product launch", "+923001234567"))
			Expect(page).To(ContainSubstring(`<textarea id="topic" name="topic">new product launch</textarea>`))
		})

		Context("when the input is incomplete", func() {
			BeforeEach(func() {
				b.GenerateAndSendReturns(broadcast.Result{
					Outcome: broadcast.Warning,
					Message: broadcast.MissingInputMessage,
				})
			})
			It("shows the warning", func() {
				page := body(submit("", ""))
				Expect(page).To(ContainSubstring(`<div class="box warning">Please enter both topic and phone number.</div>`))
				Expect(page).ToNot(ContainSubstring("Generated Post"))
			})
		})

		Context("when generation fails", func() {
			BeforeEach(func() {
				b.GenerateAndSendReturns(broadcast.Result{
					Outcome: broadcast.GenerationFailed,
					Message: broadcast.NoContentMessage,
				})
			})
			It("shows the error without a post", func() {
				page := body(submit("new product launch", "+923001234567"))
				Expect(page).To(ContainSubstring(`<div class="box error">No content generated.</div>`))
				Expect(page).ToNot(ContainSubstring("Generated Post"))
			})
		})

		Context("when delivery fails", func() {
			BeforeEach(func() {
				b.GenerateAndSendReturns(broadcast.Result{
					Outcome: broadcast.DeliveryFailed,
					Content: "*Fresh* strawberries",
					Message: "Failed to send: opening chat: browser not found",
					Err:     errors.New("opening chat: browser not found"),
				})
			})
			It("shows the post and the error", func() {
				page := body(submit("strawberries", "+923001234567"))
				Expect(page).To(ContainSubstring("<pre><code>*Fresh* strawberries</code></pre>"))
				Expect(page).To(ContainSubstring(`<div class="box error">Failed to send: opening chat: browser not found</div>`))
			})
		})
	})

	Describe("POST /api/posts", func() {
		post := func(payload string) *http.Response {
			resp, err := http.Post(server.URL+"/api/posts", "application/json", strings.NewReader(payload))
			Expect(err).ToNot(HaveOccurred())
			return resp
		}

		decode := func(resp *http.Response) map[string]string {
			var m map[string]string
			Expect(json.Unmarshal([]byte(body(resp)), &m)).To(Succeed())
			return m
		}

		It("runs the broadcaster and returns the outcome", func() {
			resp := post(`{"topic":"new product launch","phone":"+923001234567"}`)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(decode(resp)).To(Equal(map[string]string{
				"outcome": "sent",
				"message": "Message sent directly on WhatsApp!",
				"content": "# Launch\n*New Product* is here & now.",
			}))

			_, topic, phone := b.GenerateAndSendArgsForCall(0)
			Expect(topic).To(Equal("new product launch"))
			Expect(phone).To(Equal("+923001234567"))
		})

		Context("when the input is incomplete", func() {
			BeforeEach(func() {
				b.GenerateAndSendReturns(broadcast.Result{Outcome: broadcast.Warning, Message: broadcast.MissingInputMessage})
			})
			It("responds with bad request", func() {
				resp := post(`{"topic":""}`)
				Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
				Expect(decode(resp)).To(HaveKeyWithValue("outcome", "warning"))
			})
		})

		Context("when generation fails", func() {
			BeforeEach(func() {
				b.GenerateAndSendReturns(broadcast.Result{Outcome: broadcast.GenerationFailed, Message: "Error: quota exceeded"})
			})
			It("responds with bad gateway", func() {
				resp := post(`{"topic":"x","phone":"+1"}`)
				Expect(resp.StatusCode).To(Equal(http.StatusBadGateway))
				m := decode(resp)
				Expect(m).To(HaveKeyWithValue("outcome", "generation_failed"))
				Expect(m).To(HaveKeyWithValue("message", "Error: quota exceeded"))
				Expect(m).ToNot(HaveKey("content"))
			})
		})

		Context("when the body is not JSON", func() {
			It("responds with bad request without running the broadcaster", func() {
				resp := post(`topic=x`)
				Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
				Expect(b.GenerateAndSendCallCount()).To(Equal(0))
			})
		})
	})

	Describe("GET /healthz", func() {
		It("responds ok", func() {
			resp, err := http.Get(server.URL + "/healthz")
			Expect(err).ToNot(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(body(resp)).To(Equal("ok"))
		})
	})
})
