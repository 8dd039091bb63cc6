package handler

import (
	"github.com/fractionax/marketplace/internal/logic"
	"github.com/fractionax/marketplace/internal/model"
	"gorm.io/gorm"
)

// StoreHandlers 五个存储端点
type StoreHandlers struct {
	Investments *RecordHandler[model.InvestmentModel, CreateInvestmentRequest]
	Users       *RecordHandler[model.UserModel, CreateUserRequest]
	Interests   *RecordHandler[model.InterestModel, CreateInterestRequest]
	Newsletter  *RecordHandler[model.NewsletterModel, CreateNewsletterRequest]
	Waitlist    *RecordHandler[model.WaitlistModel, CreateWaitlistRequest]
}

// NewStoreHandlers 创建存储端点
func NewStoreHandlers(db *gorm.DB) *StoreHandlers {
	return &StoreHandlers{
		Investments: NewRecordHandler("investments", logic.NewRecordLogic[model.InvestmentModel](db), RecordMessages{
			Fetched:      "Successful in fetching investments",
			NotFound:     "Investment not found",
			FetchFailed:  "Failed to fetch investments",
			Created:      "Successful in creating investment",
			CreateFailed: "Failed to create investment",
		}, true, CreateInvestmentRequest.toModel),
		Users: NewRecordHandler("users", logic.NewUserLogic(db).RecordLogic, RecordMessages{
			Fetched:      "Successful in fetching users",
			NotFound:     "User not found",
			FetchFailed:  "Failed to fetch users",
			Created:      "Successful in creating user",
			CreateFailed: "Failed to create user",
		}, true, CreateUserRequest.toModel),
		Interests: NewRecordHandler("interests", logic.NewRecordLogic[model.InterestModel](db), RecordMessages{
			Fetched:      "Successful in fetching interests.",
			FetchFailed:  "Failed to fetch interests.",
			Created:      "Successful in creating interest.",
			CreateFailed: "Failed to create interest",
		}, false, CreateInterestRequest.toModel),
		Newsletter: NewRecordHandler("newsletter subscribers", logic.NewRecordLogic[model.NewsletterModel](db), RecordMessages{
			Fetched:      "Successful in fetching newsletter subscribers.",
			FetchFailed:  "Failed to fetch newsletter subscribers.",
			Created:      "Successful in creating newsletter subscriber.",
			CreateFailed: "Failed to create newsletter subscriber",
		}, false, CreateNewsletterRequest.toModel),
		Waitlist: NewRecordHandler("waitlist", logic.NewRecordLogic[model.WaitlistModel](db), RecordMessages{
			Fetched:      "Successful in fetching waitlists.",
			FetchFailed:  "Failed to fetch waitlists.",
			Created:      "Successful in creating waitlist.",
			CreateFailed: "Failed to create waitlist",
		}, false, CreateWaitlistRequest.toModel),
	}
}
