package assistant

import (
	"fmt"
	"time"

	"skytrak-service/internal/domain/entity"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// boardFlights builds n flights, every third one delayed, one hour apart
// starting at 06:00 on the test day.
func boardFlights(n int) []entity.Flight {
	airlines := []string{"LATAM", "GOL", "Azul"}
	out := make([]entity.Flight, n)
	for i := range out {
		status := "PREVISTO"
		if i%3 == 0 {
			status = "ATRASADO"
		}
		out[i] = entity.Flight{
			NumeroVoo:       fmt.Sprintf("LA%04d", 1000+i),
			Companhia:       airlines[i%len(airlines)],
			HorarioPrevisto: testNow.Add(time.Duration(i-6) * time.Hour).Format(time.RFC3339),
			Status:          status,
			OrigemCidade:    "Sao Paulo",
			OrigemEstado:    "SP",
			DestinoCidade:   "Brasilia",
			DestinoEstado:   "DF",
		}
	}
	return out
}

func lookupFlight() entity.Flight {
	return entity.Flight{
		NumeroVoo:       "LA1234",
		Status:          "ATRASADO",
		Companhia:       "LATAM",
		HorarioPrevisto: "2026-03-01T10:00:00Z",
		OrigemCidade:    "GRU",
		DestinoCidade:   "BSB",
		PrecoMedio:      650,
	}
}
