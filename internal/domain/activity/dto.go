package activity

type LogResponse struct {
	ID        string  `json:"id"`
	Action    string  `json:"action"`
	Details   *string `json:"details,omitempty"`
	Username  *string `json:"username,omitempty"`
	FullName  *string `json:"full_name,omitempty"`
	IPAddress *string `json:"ip_address,omitempty"`
	CreatedAt string  `json:"created_at"`
}
