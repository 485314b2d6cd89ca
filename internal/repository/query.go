package repository

const (
	selectBill = `SELECT
		id,
		user_id,
		creditor_id,
		description,
		total_credit_amount,
		total_paid_amount,
		current_balance,
		paid,
		created_at,
		updated_at
	FROM bills`

	selectPayment = `SELECT
		id,
		bill_id,
		issuer,
		amount,
		note,
		created_at
	FROM payments`

	selectCreditor = `SELECT
		id,
		name,
		description,
		street_address,
		city,
		state,
		country,
		phone,
		COALESCE(email, ''),
		bank_name,
		COALESCE(account_number, ''),
		created_by,
		created_at,
		updated_at
	FROM creditors`
)
