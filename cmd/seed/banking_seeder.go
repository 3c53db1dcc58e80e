package main

import (
	"log"
	"time"

	"ai-bankassist-be/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedDemoUser creates the demo user and the account the assistant falls
// back to when a query names no account number.
func SeedDemoUser(db *gorm.DB) {
	var existing model.User
	if err := db.Where("username = ?", "demo_user").First(&existing).Error; err == nil {
		log.Println("Demo user already exists, skipping...")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("demo123456"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing demo password: %v", err)
		return
	}

	user := model.User{
		Username:       "demo_user",
		Email:          "demo@bankassist.example",
		FullName:       "演示用户",
		Phone:          "13800000000",
		HashedPassword: string(hashed),
		IsVerified:     true,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Printf("Error creating demo user: %v", err)
		return
	}
	log.Printf("Created demo user: %s (id=%d)", user.Username, user.Id)

	account := model.Account{
		UserId:           user.Id,
		AccountNumber:    "6226090000000123",
		AccountType:      "savings",
		Currency:         "CNY",
		Balance:          125000.50,
		AvailableBalance: 125000.50,
		Status:           "active",
		DailyLimit:       50000,
		MonthlyLimit:     1000000,
		Description:      "演示储蓄账户",
		OpenedDate:       time.Now(),
	}
	if err := db.Create(&account).Error; err != nil {
		log.Printf("Error creating demo account: %v", err)
		return
	}
	log.Printf("Created demo account: %s", account.AccountNumber)
}

// SeedProducts loads the catalog the loan and investment responders quote.
func SeedProducts(db *gorm.DB) {
	loanProducts := []model.LoanProduct{
		{
			Name:           "个人消费贷款",
			ProductCode:    "LOAN001",
			LoanType:       "personal",
			MinAmount:      10000,
			MaxAmount:      500000,
			MinTermMonths:  6,
			MaxTermMonths:  60,
			InterestRate:   4.35,
			MinIncome:      5000,
			MinCreditScore: 600,
			IsAvailable:    true,
			Description:    "用于日常消费的个人信用贷款，审批快捷，无需抵押。",
			Requirements:   "稳定收入证明；良好信用记录；年满22周岁",
		},
		{
			Name:           "住房按揭贷款",
			ProductCode:    "LOAN002",
			LoanType:       "mortgage",
			MinAmount:      200000,
			MaxAmount:      5000000,
			MinTermMonths:  60,
			MaxTermMonths:  360,
			InterestRate:   3.85,
			MinIncome:      10000,
			MinCreditScore: 650,
			IsAvailable:    true,
			Description:    "购买住房的长期抵押贷款，利率优惠。",
			Requirements:   "购房合同；首付款证明；收入流水",
		},
	}

	for _, p := range loanProducts {
		var existing model.LoanProduct
		if err := db.Where("product_code = ?", p.ProductCode).First(&existing).Error; err == nil {
			log.Printf("Loan product '%s' already exists, skipping...", p.ProductCode)
			continue
		}
		if err := db.Create(&p).Error; err != nil {
			log.Printf("Error creating loan product '%s': %v", p.ProductCode, err)
		} else {
			log.Printf("Created loan product: %s (%s)", p.Name, p.ProductCode)
		}
	}

	investmentProducts := []model.InvestmentProduct{
		{
			Name:           "稳健增长型理财产品",
			ProductCode:    "INV001",
			InvestmentType: "fund",
			RiskLevel:      "low",
			ExpectedReturn: 3.5,
			MinInvestment:  10000,
			Currency:       "CNY",
			IsAvailable:    true,
			Description:    "低风险货币基金组合，适合短期闲置资金。",
		},
		{
			Name:           "均衡配置债券基金",
			ProductCode:    "INV002",
			InvestmentType: "bond",
			RiskLevel:      "medium",
			ExpectedReturn: 5.2,
			MinInvestment:  50000,
			Currency:       "CNY",
			IsAvailable:    true,
			Description:    "债券为主的均衡型产品，适合稳健型投资者。",
		},
	}

	for _, p := range investmentProducts {
		var existing model.InvestmentProduct
		if err := db.Where("product_code = ?", p.ProductCode).First(&existing).Error; err == nil {
			log.Printf("Investment product '%s' already exists, skipping...", p.ProductCode)
			continue
		}
		if err := db.Create(&p).Error; err != nil {
			log.Printf("Error creating investment product '%s': %v", p.ProductCode, err)
		} else {
			log.Printf("Created investment product: %s (%s)", p.Name, p.ProductCode)
		}
	}
}
