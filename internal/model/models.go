package model

// All mengembalikan semua model untuk AutoMigrate, urut sesuai dependensi FK.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Student{},
		&KasPeriod{},
		&KasPayment{},
		&Transaction{},
	}
}
