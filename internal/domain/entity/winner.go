package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Winner representa un cobro de premio registrado en la tabla winners.
// La tabla es propiedad de otro sistema; cualquier columna puede venir NULL.
// Un mismo PlayerID puede aparecer en varias filas (ganadores repetidos).
type Winner struct {
	PlayerName         *string // player_name_w_id
	PlayerID           *string
	WonAmount          decimal.NullDecimal // nunca negativo
	ClaimPaidDate      *time.Time
	ClaimantCity       *string
	ClaimantState      *string
	ClaimantCounty     *string
	GameCategory       *string
	LocationName       *string // punto de venta donde se compró el boleto
	LocationCity       *string
	InstantPricePoint  *string
	AnonymityIndicator *string // 'Yes' si la identidad no es pública
}
