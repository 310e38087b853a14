package submit_incident

// formDescription поле формы с описанием инцидента
const formDescription = "description"

// maxFormBytes ограничение размера тела формы
const maxFormBytes = 64 << 10
