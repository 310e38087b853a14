package submit_payment

// formEmail поле формы с email плательщика
const formEmail = "email"

// maxFormBytes ограничение размера тела формы
const maxFormBytes = 4 << 10
