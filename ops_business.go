package banksim

// Business account administration: associate roles and employee limits.

const (
	msgNotBusiness       = "Account is not of type business"
	msgAlreadyAssociate  = "The user is already an associate of the account."
	msgNotOwnerSpending  = "You must be owner in order to change spending limit."
	msgNotOwnerDeposit   = "You must be owner in order to change deposit limit."
	msgNotAuthorized     = "You are not authorized to make this transaction."
)

// AddNewBusinessAssociate grants a user a role on a business account. The
// role is "manager" or "employee"; a user already holding a role (the owner
// included) cannot be added again.
func (b *Bank) AddNewBusinessAssociate(ts int, accountIBAN, role, email string) string {
	_, account := b.FindAccount(accountIBAN)
	if account == nil {
		return msgAccountNotFound
	}
	if !account.IsBusiness() {
		return msgNotBusiness
	}
	if b.UserByEmail(email) == nil {
		return msgUserNotFound
	}
	var added bool
	switch role {
	case "manager":
		added = account.Business.AddManager(email)
	case "employee":
		added = account.Business.AddEmployee(email)
	default:
		return msgNotAuthorized
	}
	if !added {
		return msgAlreadyAssociate
	}
	return ""
}

// ChangeSpendingLimit sets the employee spending cap. Owner only.
func (b *Bank) ChangeSpendingLimit(ts int, accountIBAN, email string, amount Money) string {
	_, account := b.FindAccount(accountIBAN)
	if account == nil {
		return msgAccountNotFound
	}
	if !account.IsBusiness() {
		return msgNotBusiness
	}
	if !account.Business.IsOwner(email) {
		return msgNotOwnerSpending
	}
	account.Business.SetSpendingLimit(amount)
	return ""
}

// ChangeDepositLimit sets the employee deposit cap. Owner only.
func (b *Bank) ChangeDepositLimit(ts int, accountIBAN, email string, amount Money) string {
	_, account := b.FindAccount(accountIBAN)
	if account == nil {
		return msgAccountNotFound
	}
	if !account.IsBusiness() {
		return msgNotBusiness
	}
	if !account.Business.IsOwner(email) {
		return msgNotOwnerDeposit
	}
	account.Business.SetDepositLimit(amount)
	return ""
}
