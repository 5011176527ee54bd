package main

import (
	"fmt"
	"log"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"

	"izuran/internal/cart"
	"izuran/internal/config"
	"izuran/internal/handlers"
	"izuran/internal/middleware"
	"izuran/internal/repositories"
	"izuran/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Create session store for anonymous cart ids
	sessionStore := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30, // 30 days
		HttpOnly: true,
		Secure:   cfg.Server.Env == "production",
		SameSite: http.SameSiteLaxMode,
	}

	// Initialize repositories over the published content catalog
	artistRepo, err := repositories.NewArtistRepository(cfg.Data.Dir)
	if err != nil {
		log.Fatal("Failed to load artist catalog:", err)
	}
	eventRepo, err := repositories.NewEventRepository(cfg.Data.Dir)
	if err != nil {
		log.Fatal("Failed to load event catalog:", err)
	}
	productRepo, err := repositories.NewProductRepository(cfg.Data.Dir)
	if err != nil {
		log.Fatal("Failed to load product catalog:", err)
	}
	contentRepo, err := repositories.NewContentRepository(cfg.Data.Dir)
	if err != nil {
		log.Fatal("Failed to load content catalog:", err)
	}
	ticketRepo := repositories.NewTicketRepository(filepath.Join(cfg.Data.Dir, "tickets.json"))

	// Cart persistence store
	cartStore, err := cart.NewFileStore(cfg.Cart.StoreDir)
	if err != nil {
		log.Fatal("Failed to initialize cart store:", err)
	}

	// Initialize services
	artistService := services.NewArtistService(artistRepo)
	eventService := services.NewEventService(eventRepo, artistRepo)
	shopService := services.NewShopService(productRepo)
	contentService := services.NewContentService(contentRepo)
	ticketService := services.NewTicketService(ticketRepo, eventRepo)

	// Initialize handlers
	publicHandler := handlers.NewPublicHandler(artistService, eventService, contentService)
	shopHandler := handlers.NewShopHandler(shopService)
	cartHandler := handlers.NewCartHandler(shopService, cartStore, sessionStore)
	ticketHandler := handlers.NewTicketHandler(ticketService, cfg.Cart.QRSize)

	// Initialize router
	r := chi.NewRouter()

	// Basic middleware
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.CORSMiddleware(middleware.DefaultCORSConfig()))

	r.Route("/api", func(r chi.Router) {
		// Public content
		r.Get("/artists", publicHandler.ListArtists)
		r.Get("/artists/{slug}", publicHandler.GetArtist)
		r.Get("/events", publicHandler.ListEvents)
		r.Get("/events/{id}", publicHandler.GetEvent)
		r.Get("/events/{id}/tickets", ticketHandler.ListEventTickets)
		r.Get("/podcasts", publicHandler.ListPodcasts)
		r.Get("/posts", publicHandler.ListPosts)
		r.Get("/posts/{slug}", publicHandler.GetPost)

		// Shop catalog
		r.Get("/shop/products", shopHandler.ListProducts)
		r.Get("/shop/products/{id}", shopHandler.GetProduct)

		// Shopping cart
		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.ViewCart)
			r.Delete("/", cartHandler.ClearCart)
			r.Post("/items", cartHandler.AddItem)
			r.Patch("/items/{id}", cartHandler.UpdateItem)
			r.Delete("/items/{id}", cartHandler.RemoveItem)
			r.Post("/reorder", cartHandler.ReorderItems)
		})

		// Tickets
		r.Route("/tickets", func(r chi.Router) {
			r.Post("/issue", ticketHandler.IssueTicket)
			r.Post("/validate", ticketHandler.ValidateTicket)
			r.Get("/{code}/qr", ticketHandler.TicketQR)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","service":"izuran"}`))
	})

	serverAddr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s (Environment: %s)", serverAddr, cfg.Server.Env)
	log.Fatal(http.ListenAndServe(serverAddr, r))
}
