package main

import (
	"visitadoras/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.ProfileModel{},
		model.AuthenticationModel{},
		model.RefreshTokenModel{},
		model.PhysicianModel{},
		model.VisitModel{},
		model.CommissionConfigModel{},
		model.MonthlyCommissionModel{},
		model.ReferralCommissionModel{},
		model.PaymentRecordModel{},
		model.VisitadoraCommissionModel{},
		model.DeviceModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
