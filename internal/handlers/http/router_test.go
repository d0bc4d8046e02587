package http

import (
	"net/http"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/renaspress/renaspress-backend/internal/domain/ports"
)

var _ = Describe("Router", func() {
	var server *testServer

	BeforeEach(func() {
		server = newTestServer(stubNewsSource{articles: []ports.NewsArticle{{
			Title:       "Riyadh metro opens new line",
			Description: "The orange line starts service today.",
			URL:         "https://news.example.com/metro",
			ImageURL:    "https://img.example.com/metro.jpg",
			PublishedAt: time.Date(2026, 10, 1, 6, 0, 0, 0, time.UTC),
		}}})
	})

	Describe("errors", func() {
		It("answers unknown routes with a localized problem", func() {
			status, body := server.do(http.MethodGet, "/api/nope", "", nil, "Accept-Language", "ar")

			Expect(status).To(Equal(http.StatusNotFound))
			Expect(body["status"]).To(BeEquivalentTo(http.StatusNotFound))
			Expect(body["type"]).To(Equal("https://api.renaspress.test/problems/not-found"))
			Expect(body["instance"]).To(Equal("/api/nope"))
			Expect(body["error"]).To(Equal("المسار غير موجود"))
			Expect(body["detail"]).To(Equal(body["error"]))
		})

		It("lists every rejected field on validation failures", func() {
			status, body := server.do(http.MethodPost, "/api/auth/register", "", map[string]any{
				"email": "not-an-email",
			})

			Expect(status).To(Equal(http.StatusBadRequest))
			Expect(body["type"]).To(HaveSuffix("/problems/validation-error"))
			Expect(body["error"]).NotTo(BeEmpty())

			fields := []string{}
			for _, e := range body["errors"].([]any) {
				fields = append(fields, e.(map[string]any)["field"].(string))
			}
			Expect(fields).To(ContainElements("name", "email", "password", "confirmPassword"))
		})
	})

	Describe("auth", func() {
		It("registers, logs in and returns the current user", func() {
			token := server.register("Lina", "lina@renaspress.test")

			status, body := server.do(http.MethodGet, "/api/auth/me", token, nil)
			Expect(status).To(Equal(http.StatusOK))
			user := body["user"].(map[string]any)
			Expect(user["email"]).To(Equal("lina@renaspress.test"))
			Expect(user["role"]).To(Equal("author"))
			Expect(user).NotTo(HaveKey("password"))

			status, body = server.do(http.MethodPost, "/api/auth/login", "", map[string]any{
				"email":    "LINA@renaspress.test",
				"password": "password123",
			})
			Expect(status).To(Equal(http.StatusOK))
			Expect(body["token"]).NotTo(BeEmpty())
		})

		It("rejects a duplicate email", func() {
			server.register("Lina", "lina@renaspress.test")

			status, body := server.do(http.MethodPost, "/api/auth/register", "", map[string]any{
				"name":            "Other",
				"email":           "lina@renaspress.test",
				"password":        "password123",
				"confirmPassword": "password123",
			})
			Expect(status).To(Equal(http.StatusBadRequest))
			Expect(body["type"]).To(HaveSuffix("/problems/conflict"))
		})

		It("rejects wrong credentials and missing tokens", func() {
			server.register("Lina", "lina@renaspress.test")

			status, _ := server.do(http.MethodPost, "/api/auth/login", "", map[string]any{
				"email":    "lina@renaspress.test",
				"password": "wrong-password",
			})
			Expect(status).To(Equal(http.StatusUnauthorized))

			status, body := server.do(http.MethodGet, "/api/auth/me", "", nil)
			Expect(status).To(Equal(http.StatusUnauthorized))
			Expect(body["error"]).To(Equal("No token provided"))
		})
	})

	Describe("posts", func() {
		newPost := func(status string) map[string]any {
			return map[string]any{
				"title":         "Charity run raises funds",
				"content":       "<p>Runners gathered downtown.</p>",
				"category":      "charity",
				"status":        status,
				"tags":          []string{"Charity", "Events"},
				"featuredImage": "https://cdn.renaspress.test/run.jpg",
			}
		}

		It("creates a post and serves it publicly once published", func() {
			token := server.register("Lina", "lina@renaspress.test")

			status, body := server.do(http.MethodPost, "/api/posts", token, newPost("published"))
			Expect(status).To(Equal(http.StatusOK), "%v", body)
			post := body["post"].(map[string]any)
			Expect(post["status"]).To(Equal("published"))
			Expect(post["tags"]).To(ConsistOf("Charity", "Events"))
			Expect(post["slug"]).To(HavePrefix("charity-run-raises-funds"))

			status, body = server.do(http.MethodGet, "/api/posts/"+post["id"].(string), "", nil)
			Expect(status).To(Equal(http.StatusOK))
			Expect(body["post"].(map[string]any)["title"]).To(Equal("Charity run raises funds"))

			status, body = server.do(http.MethodGet, "/api/posts?category=charity", "", nil)
			Expect(status).To(Equal(http.StatusOK))
			Expect(body["posts"]).To(HaveLen(1))
			pagination := body["pagination"].(map[string]any)
			Expect(pagination["total"]).To(BeEquivalentTo(1))
			Expect(pagination["hasNextPage"]).To(BeFalse())
		})

		It("keeps drafts out of the public listing", func() {
			token := server.register("Lina", "lina@renaspress.test")
			status, _ := server.do(http.MethodPost, "/api/posts", token, newPost("draft"))
			Expect(status).To(Equal(http.StatusOK))

			_, body := server.do(http.MethodGet, "/api/posts", "", nil)
			Expect(body["posts"]).To(BeEmpty())

			_, body = server.do(http.MethodGet, "/api/posts/user", token, nil)
			Expect(body["posts"]).To(HaveLen(1))
		})

		It("requires a token to create and the right to edit", func() {
			status, _ := server.do(http.MethodPost, "/api/posts", "", newPost("draft"))
			Expect(status).To(Equal(http.StatusUnauthorized))

			owner := server.register("Lina", "lina@renaspress.test")
			other := server.register("Omar", "omar@renaspress.test")

			_, body := server.do(http.MethodPost, "/api/posts", owner, newPost("draft"))
			id := body["post"].(map[string]any)["id"].(string)

			status, body = server.do(http.MethodPut, "/api/posts/"+id, other, map[string]any{
				"title":   "Hijacked",
				"content": "<p>Nope</p>",
			})
			Expect(status).To(Equal(http.StatusForbidden))
			Expect(body["type"]).To(HaveSuffix("/problems/forbidden"))

			status, _ = server.do(http.MethodDelete, "/api/posts/"+id, other, nil)
			Expect(status).To(Equal(http.StatusForbidden))

			editor := server.staffToken("editor", "editor@renaspress.test")
			status, body = server.do(http.MethodPut, "/api/posts/"+id, editor, map[string]any{
				"title":   "Copy edited",
				"content": "<p>Runners gathered downtown on Friday.</p>",
			})
			Expect(status).To(Equal(http.StatusOK), "%v", body)
			Expect(body["post"].(map[string]any)["title"]).To(Equal("Copy edited"))
		})

		It("rejects unknown categories", func() {
			token := server.register("Lina", "lina@renaspress.test")
			post := newPost("draft")
			post["category"] = "gossip"

			status, body := server.do(http.MethodPost, "/api/posts", token, post)
			Expect(status).To(Equal(http.StatusBadRequest))
			errs := body["errors"].([]any)
			Expect(errs).To(HaveLen(1))
			Expect(errs[0].(map[string]any)["field"]).To(Equal("category"))
		})

		It("answers 404 for a missing post", func() {
			status, body := server.do(http.MethodGet, "/api/posts/00000000-0000-0000-0000-000000000000", "", nil)
			Expect(status).To(Equal(http.StatusNotFound))
			Expect(body["type"]).To(HaveSuffix("/problems/not-found"))
		})
	})

	Describe("forum", func() {
		It("creates a topic and replies to it", func() {
			token := server.register("Lina", "lina@renaspress.test")

			status, body := server.do(http.MethodPost, "/api/forum/topics", token, map[string]any{
				"title":   "Best coffee in Jeddah?",
				"content": "Looking for recommendations.",
			})
			Expect(status).To(Equal(http.StatusCreated), "%v", body)
			topicID := body["topic"].(map[string]any)["id"].(string)

			status, body = server.do(http.MethodPost, "/api/forum/comments", "", map[string]any{
				"topic_id":    topicID,
				"content":     "Try the harbour cafes.",
				"author_name": "Visitor",
			})
			Expect(status).To(Equal(http.StatusCreated), "%v", body)
			Expect(body["comment"].(map[string]any)["authorName"]).To(Equal("Visitor"))

			status, body = server.do(http.MethodGet, "/api/forum/topics/"+topicID, "", nil)
			Expect(status).To(Equal(http.StatusOK))
			Expect(body["comments"]).To(HaveLen(1))
			Expect(body["topic"].(map[string]any)["replies"]).To(BeEquivalentTo(1))
		})

		It("requires a name from anonymous commenters", func() {
			token := server.register("Lina", "lina@renaspress.test")
			_, body := server.do(http.MethodPost, "/api/forum/topics", token, map[string]any{
				"title":   "Weekend plans",
				"content": "Anything on?",
			})
			topicID := body["topic"].(map[string]any)["id"].(string)

			status, _ := server.do(http.MethodPost, "/api/forum/comments", "", map[string]any{
				"topic_id": topicID,
				"content":  "Hello",
			})
			Expect(status).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("news import", func() {
		It("is forbidden to authors", func() {
			token := server.register("Lina", "lina@renaspress.test")

			status, _ := server.do(http.MethodPost, "/api/newsapi/fetch-saudi-news", token, nil)
			Expect(status).To(Equal(http.StatusForbidden))
		})

		It("publishes new headlines for admins", func() {
			token := server.adminToken()

			status, body := server.do(http.MethodPost, "/api/newsapi/fetch-saudi-news", token, nil)
			Expect(status).To(Equal(http.StatusOK), "%v", body)
			Expect(body["posts"]).To(HaveLen(1))
			Expect(body["totalArticles"]).To(BeEquivalentTo(1))

			_, body = server.do(http.MethodGet, "/api/posts", "", nil)
			Expect(body["posts"]).To(HaveLen(1))
		})
	})

	Describe("translation", func() {
		It("falls back to the original text without an API key", func() {
			status, body := server.do(http.MethodPost, "/api/translate", "", map[string]any{
				"action":         "translate",
				"text":           "Good morning",
				"targetLanguage": "ar",
			})
			Expect(status).To(Equal(http.StatusOK), "%v", body)
			Expect(body["result"].(map[string]any)["translatedText"]).To(Equal("Good morning"))
		})
	})

	It("reports health", func() {
		status, body := server.do(http.MethodGet, "/health", "", nil)
		Expect(status).To(Equal(http.StatusOK))
		Expect(body["status"]).To(Equal("ok"))
	})
})
