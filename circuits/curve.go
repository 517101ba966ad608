package circuits

import "github.com/consensys/gnark-crypto/ecc"

func Curve() ecc.ID { return ecc.BN254 }
