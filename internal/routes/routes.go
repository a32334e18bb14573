package routes

import (
	"github.com/go-chi/chi/v5"
	"github.com/mindgarden/mindgarden-backend/internal/handlers"
)

func SetupRoutes(r *chi.Mux) {
	// Auth routes
	r.Post("/api/auth/signup", handlers.Signup)
	r.Post("/api/auth/signin", handlers.Signin)
	r.Post("/api/auth/signout", handlers.Signout)
	r.Get("/api/auth/me", handlers.GetMe)

	// Companion chat routes
	r.Post("/api/chat", handlers.Chat)
	r.Get("/api/chat/history", handlers.ChatHistory)

	// Mood tracking routes
	r.Post("/api/moods", handlers.CreateMood)
	r.Get("/api/moods", handlers.GetMoods)
	r.Delete("/api/moods", handlers.DeleteMood)
	r.Get("/api/moods/trends", handlers.GetMoodTrends)
	r.Get("/api/moods/calendar", handlers.GetMoodCalendar)

	// Journaling routes
	r.Post("/api/journals", handlers.CreateJournal)
	r.Get("/api/journals", handlers.GetJournals)
	r.Delete("/api/journals", handlers.DeleteJournal)

	// WebSocket endpoint for interactive companion chat
	r.Get("/ws/chat", handlers.ChatWebSocket)
}
