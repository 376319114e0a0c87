package httpx

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/you/go-safar-pricing/internal/pricing"
	"github.com/you/go-safar-pricing/internal/service"
)

type flightsResponse struct {
	From            string                `json:"from"`
	To              string                `json:"to"`
	Date            string                `json:"date"`
	Currency        string                `json:"currency"`
	LowestPrice     int                   `json:"lowest_price"`
	LowestFormatted string                `json:"lowest_formatted"`
	Quotes          []pricing.FlightQuote `json:"quotes"`
}

type hotelsResponse struct {
	City            string               `json:"city"`
	CheckIn         string               `json:"check_in"`
	CheckOut        string               `json:"check_out"`
	Currency        string               `json:"currency"`
	LowestPerNight  int                  `json:"lowest_per_night"`
	LowestFormatted string               `json:"lowest_formatted"`
	Quotes          []pricing.HotelQuote `json:"quotes"`
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func FlightsHandler(svc *service.QuoteService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		from, to, date := q.Get("from"), q.Get("to"), q.Get("date")
		if from == "" || to == "" || date == "" {
			http.Error(w, "from, to and date are required", http.StatusBadRequest)
			return
		}
		quotes, err := svc.Flights(r.Context(), from, to, date)
		if err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		lowest := pricing.LowestFlightPrice(quotes)
		writeJSON(w, flightsResponse{
			From: from, To: to, Date: date,
			Currency:        pricing.Currency,
			LowestPrice:     lowest,
			LowestFormatted: pricing.FormatINR(lowest),
			Quotes:          quotes,
		})
	}
}

func HotelsHandler(svc *service.QuoteService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		city, in, out := q.Get("city"), q.Get("check_in"), q.Get("check_out")
		if city == "" || in == "" || out == "" {
			http.Error(w, "city, check_in and check_out are required", http.StatusBadRequest)
			return
		}
		quotes, err := svc.Hotels(r.Context(), city, in, out)
		if err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		lowest := pricing.LowestHotelPrice(quotes)
		writeJSON(w, hotelsResponse{
			City: city, CheckIn: in, CheckOut: out,
			Currency:        pricing.Currency,
			LowestPerNight:  lowest,
			LowestFormatted: pricing.FormatINR(lowest),
			Quotes:          quotes,
		})
	}
}

func TripHandler(svc *service.QuoteService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		from, to, date, out := q.Get("from"), q.Get("to"), q.Get("date"), q.Get("check_out")
		if from == "" || to == "" || date == "" {
			http.Error(w, "from, to and date are required", http.StatusBadRequest)
			return
		}
		if out == "" {
			out = date
		}
		trip, err := svc.Trip(r.Context(), from, to, date, out)
		if err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, trip)
	}
}

func TrendHandler(trend *service.TrendService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		from, to := q.Get("from"), q.Get("to")
		if from == "" || to == "" {
			http.Error(w, "from and to are required", http.StatusBadRequest)
			return
		}
		writeJSON(w, trend.MonthlyLowest(from, to, 12))
	}
}

// SubscribeSSEHandler streams re-quoted trip prices on a fixed period, so
// an open results page picks up the day rollover without polling.
func SubscribeSSEHandler(svc *service.QuoteService, period time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/sse/"), "/")
		if len(parts) < 2 {
			http.Error(w, "use /sse/{from}/{to}?date=YYYY-MM-DD", 400)
			return
		}
		from, to := parts[0], parts[1]
		date := r.URL.Query().Get("date")
		if date == "" {
			http.Error(w, "date required", 400)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming unsupported", 500)
			return
		}

		tick := time.NewTicker(period)
		defer tick.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				log.Println("SSE client closed")
				return

			case <-tick.C:
				quotes, err := svc.Flights(ctx, from, to, date)
				if err != nil {
					fmt.Fprintf(w, "event: error\ndata: %q\n\n", err.Error())
					flusher.Flush()
					return
				}
				payload, _ := json.Marshal(quotes)
				fmt.Fprintf(w, "event: update\ndata: %s\n\n", payload)
				flusher.Flush()
			}
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // in prod, restrict origin
	},
}

// SubscribeWSHandler is the websocket twin of the SSE stream; it pushes the
// current quotes immediately, then on every tick.
func SubscribeWSHandler(svc *service.QuoteService, period time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/ws/"), "/")
		if len(parts) < 2 {
			http.Error(w, "use /ws/{from}/{to}?date=YYYY-MM-DD", 400)
			return
		}
		from, to := parts[0], parts[1]
		date := r.URL.Query().Get("date")
		if date == "" {
			http.Error(w, "date required", 400)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("upgrade error: %v", err)
			return
		}
		defer conn.Close()

		ticker := time.NewTicker(period)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			quotes, err := svc.Flights(ctx, from, to, date)
			if err != nil {
				conn.WriteJSON(map[string]string{"error": err.Error()})
				return
			}
			if err := conn.WriteJSON(quotes); err != nil {
				log.Printf("write error: %v", err)
				return
			}

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				continue
			}
		}
	}
}
